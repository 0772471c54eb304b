package model

import "time"

// AuthorResponse mirrors the upstream author payload.
type AuthorResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Bio            string `json:"bio,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
	FollowersCount int    `json:"followers_count"`
}

// Author is a cached author row.
type Author struct {
	ID             string
	Name           string
	Bio            string
	PhotoURL       string
	FollowersCount int
	CachedAt       time.Time
}

// ToResponse converts the cached row back to its wire shape.
func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:             a.ID,
		Name:           a.Name,
		Bio:            a.Bio,
		PhotoURL:       a.PhotoURL,
		FollowersCount: a.FollowersCount,
	}
}

// AuthorFromResponse builds a cache row stamped with cachedAt.
func AuthorFromResponse(r AuthorResponse, cachedAt time.Time) Author {
	return Author{
		ID:             r.ID,
		Name:           r.Name,
		Bio:            r.Bio,
		PhotoURL:       r.PhotoURL,
		FollowersCount: r.FollowersCount,
		CachedAt:       cachedAt,
	}
}
