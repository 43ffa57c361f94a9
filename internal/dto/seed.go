package dto

type SeedReport struct {
	PostID           int64 `json:"post_id"`
	CommentsRemoved  int64 `json:"comments_removed"`
	MentionsRemoved  int64 `json:"mentions_removed"`
	CommentsInserted int   `json:"comments_inserted"`
	MentionsInserted int   `json:"mentions_inserted"`
	SkippedFixtures  int   `json:"skipped_fixtures"`
	SkippedMentions  int   `json:"skipped_mentions"`
	FilteredMentions int   `json:"filtered_mentions"`
}

// Add folds other into r, keeping r's PostID.
func (r *SeedReport) Add(other SeedReport) {
	r.CommentsRemoved += other.CommentsRemoved
	r.MentionsRemoved += other.MentionsRemoved
	r.CommentsInserted += other.CommentsInserted
	r.MentionsInserted += other.MentionsInserted
	r.SkippedFixtures += other.SkippedFixtures
	r.SkippedMentions += other.SkippedMentions
	r.FilteredMentions += other.FilteredMentions
}

type BootstrapReport struct {
	Users          int `json:"users"`
	Posts          int `json:"posts"`
	Friendships    int `json:"friendships"`
	SkippedEntries int `json:"skipped_entries"`
}
