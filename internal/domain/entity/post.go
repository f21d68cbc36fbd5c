package entity

import "time"

// Post is a discussion entry inside a circle. Author fields are denormalized
// from the user. Comments keeps comment IDs in insertion (chronological) order.
type Post struct {
	ID           string    `bson:"id" json:"id"`
	AuthorID     string    `bson:"authorId" json:"authorId"`
	AuthorName   string    `bson:"authorName" json:"authorName"`
	AuthorAvatar string    `bson:"authorAvatar" json:"authorAvatar"`
	CircleID     string    `bson:"circleId" json:"circleId"`
	Content      string    `bson:"content" json:"content"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
	Comments     []string  `bson:"comments" json:"comments"`
	Likes        int       `bson:"likes" json:"likes"`
}

// Comment belongs to a post. PostID is required so comments can be grouped by
// their owning post without consulting the post's comment-ID list.
type Comment struct {
	ID           string    `bson:"id" json:"id"`
	PostID       string    `bson:"postId" json:"postId"`
	AuthorID     string    `bson:"authorId" json:"authorId"`
	AuthorName   string    `bson:"authorName" json:"authorName"`
	AuthorAvatar string    `bson:"authorAvatar" json:"authorAvatar"`
	Content      string    `bson:"content" json:"content"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
}
