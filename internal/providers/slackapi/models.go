package slackapi

// UsersListAPIResponse is the Slack users.list response, trimmed to what the
// directory lookup needs. TzOffset is a pointer: Slack omits the field for
// users who never set a timezone, and that must stay distinguishable from an
// offset of zero.
type UsersListAPIResponse struct {
	OK      bool     `json:"ok"`
	Error   string   `json:"error"`
	Members []Member `json:"members"`
}

type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Deleted  bool   `json:"deleted"`
	Tz       string `json:"tz"`
	TzLabel  string `json:"tz_label"`
	TzOffset *int   `json:"tz_offset"`
}

// UserProfile is the timezone-relevant slice of a chat user's profile. The
// offset is the platform's already-DST-adjusted value, in seconds.
type UserProfile struct {
	UTCOffset int
	Label     string
	HasOffset bool
}
