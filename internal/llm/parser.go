package llm

import (
	"encoding/json"
	"errors"
)

type SocialPost struct {
	Headline string   `json:"headline"`
	Body     string   `json:"body"`
	Hashtags []string `json:"hashtags"`
}

type ArticleSection struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

type Article struct {
	Title    string           `json:"title"`
	Sections []ArticleSection `json:"sections"`
}

func ParseSocialPost(rawJSON string) (*SocialPost, error) {
	var post SocialPost
	if err := json.Unmarshal([]byte(rawJSON), &post); err != nil {
		return nil, errors.New("invalid LLM JSON output")
	}

	if post.Headline == "" || post.Body == "" {
		return nil, errors.New("incomplete social post")
	}

	return &post, nil
}

func ParseArticle(rawJSON string) (*Article, error) {
	var article Article
	if err := json.Unmarshal([]byte(rawJSON), &article); err != nil {
		return nil, errors.New("invalid LLM JSON output")
	}

	if article.Title == "" || len(article.Sections) == 0 {
		return nil, errors.New("incomplete article")
	}

	return &article, nil
}
