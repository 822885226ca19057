package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// Seeds the board over the HTTP API with fake users, posts and like toggles.

type seedUser struct {
	UserID   string
	Username string
}

type createPostPayload struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type toggleLikePayload struct {
	UserID string `json:"userId"`
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "base URL of the keijiban service")
		users   = flag.Int("users", 5, "number of fake users")
		posts   = flag.Int("posts", 20, "number of fake posts")
		likes   = flag.Int("likes", 60, "number of like toggles")
	)
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	seedUsers := make([]seedUser, *users)
	for i := range seedUsers {
		userID := fmt.Sprintf("user_%s", uuid.New().String())
		seedUsers[i] = seedUser{
			UserID:   userID,
			Username: fmt.Sprintf("ユーザー%s", userID[len(userID)-4:]),
		}
	}

	postIDs := make([]string, 0, *posts)
	for i := 0; i < *posts; i++ {
		author := seedUsers[rand.Intn(len(seedUsers))]
		id, err := createPost(*baseURL, createPostPayload{
			Title:    gofakeit.Sentence(4),
			Content:  gofakeit.Paragraph(1, 2, 8, " "),
			UserID:   author.UserID,
			Username: author.Username,
		})
		if err != nil {
			log.Fatalf("Failed to create post: %v", err)
		}
		postIDs = append(postIDs, id)
	}
	log.Printf("Created %d posts", len(postIDs))

	for i := 0; i < *likes; i++ {
		user := seedUsers[rand.Intn(len(seedUsers))]
		postID := postIDs[rand.Intn(len(postIDs))]
		if err := toggleLike(*baseURL, postID, user.UserID); err != nil {
			log.Fatalf("Failed to toggle like: %v", err)
		}
	}
	log.Printf("Toggled %d likes", *likes)
}

func createPost(baseURL string, payload createPostPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	resp, err := http.Post(baseURL+"/api/posts", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var created struct {
		ID string `json:"_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func toggleLike(baseURL, postID, userID string) error {
	body, err := json.Marshal(toggleLikePayload{UserID: userID})
	if err != nil {
		return err
	}

	resp, err := http.Post(baseURL+"/api/posts/"+postID+"/like", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
