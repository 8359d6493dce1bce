package entity

// Post is the feed aggregate: the post body plus its likes set and comment
// list, addressed by a caller-supplied unique id. JSON and BSON field names
// are the wire and storage contract and must not change.
type Post struct {
	ID       string    `json:"id" bson:"id"`
	Text     string    `json:"text" bson:"text"`
	MediaURL string    `json:"mediaUrl" bson:"mediaUrl"`
	Email    string    `json:"email" bson:"email"`
	Likes    []string  `json:"likes" bson:"likes"`
	Comments []Comment `json:"comments" bson:"comments"`
}

// Comment lives inside its parent post document and has no lifetime of its
// own. Timestamp is assigned server-side, in milliseconds.
type Comment struct {
	ID        string `json:"id" bson:"id"`
	Text      string `json:"text" bson:"text"`
	Email     string `json:"email" bson:"email"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}
