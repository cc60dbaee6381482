// Seeds a running blog-service over its HTTP API with fake users and posts.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = "http://localhost:8080"

func main() {
	gofakeit.Seed(time.Now().UnixNano())
	if v := os.Getenv("SEED_BASE_URL"); v != "" {
		baseURL = v
	}

	userid := strings.ToLower(gofakeit.LetterN(6) + gofakeit.DigitN(2))
	password := "pass" + gofakeit.DigitN(4)

	// 1. Sign up.
	signup(userid, password)
	// 2. Login and retrieve the auth token.
	token := login(userid, password)
	if token == "" {
		log.Fatal("could not obtain token, aborting seeding process")
	}
	// 3. Verify the session.
	me(token)
	// 4. Create a handful of posts.
	var lastID float64
	for i := 0; i < 5; i++ {
		lastID = createPost(token, gofakeit.Sentence(8))
	}
	// 5. List everything, then just this author's posts.
	listPosts(token, "")
	listPosts(token, userid)
	// 6. Read, update, delete the last post.
	getPost(token, lastID)
	updatePost(token, lastID, gofakeit.Sentence(10))
	deletePost(token, lastID)
}

func signup(userid, password string) {
	body := map[string]string{
		"userid":   userid,
		"password": password,
		"name":     gofakeit.Name(),
		"email":    gofakeit.Email(),
	}
	resp := post("/auth/signup", "", body)
	log.Printf("signup %s: %s", userid, resp.Status)
	resp.Body.Close()
}

func login(userid, password string) string {
	resp := post("/auth/login", "", map[string]string{"userid": userid, "password": password})
	defer resp.Body.Close()
	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	token, _ := result["token"].(string)
	log.Printf("login %s: %s", userid, resp.Status)
	return token
}

func me(token string) {
	resp := do("POST", "/auth/me", token, nil)
	log.Printf("me: %s", resp.Status)
	resp.Body.Close()
}

func createPost(token, text string) float64 {
	resp := post("/post", token, map[string]string{"text": text})
	defer resp.Body.Close()
	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	id, _ := result["id"].(float64)
	log.Printf("createPost id=%v: %s", id, resp.Status)
	return id
}

func listPosts(token, userid string) {
	path := "/post"
	if userid != "" {
		path += "?userid=" + userid
	}
	resp := do("GET", path, token, nil)
	defer resp.Body.Close()
	var posts []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&posts)
	log.Printf("listPosts %q: %d posts, %s", userid, len(posts), resp.Status)
}

func getPost(token string, id float64) {
	resp := do("GET", fmt.Sprintf("/post/%.0f", id), token, nil)
	log.Printf("getPost %.0f: %s", id, resp.Status)
	resp.Body.Close()
}

func updatePost(token string, id float64, text string) {
	resp := do("PUT", fmt.Sprintf("/post/%.0f", id), token, map[string]string{"text": text})
	log.Printf("updatePost %.0f: %s", id, resp.Status)
	resp.Body.Close()
}

func deletePost(token string, id float64) {
	resp := do("DELETE", fmt.Sprintf("/post/%.0f", id), token, nil)
	log.Printf("deletePost %.0f: %s", id, resp.Status)
	resp.Body.Close()
}

func post(path, token string, body any) *http.Response {
	return do("POST", path, token, body)
}

func do(method, path, token string, body any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, baseURL+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}
