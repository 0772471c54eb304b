package model

import "time"

// FollowResponse is a followed author.
type FollowResponse struct {
	AuthorID  string         `json:"author_id"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
}

// FollowRequest is the body of POST /follows.
type FollowRequest struct {
	AuthorID string `json:"author_id"`
}
