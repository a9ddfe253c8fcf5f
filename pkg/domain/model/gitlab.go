package model

// Payload types for the GitLab webhook events that are translated.
// Only the fields read by the formatters are declared.

// User is a GitLab user as embedded in webhook payloads
type User struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// Project identifies the source repository
type Project struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	WebURL    string `json:"web_url"`
}

// Commit is a commit record of push, merge request and note payloads
type Commit struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Author    *User  `json:"author"`
}

// PushEvent is the payload of "Push Hook"
type PushEvent struct {
	Before            string   `json:"before"`
	After             string   `json:"after"`
	Ref               string   `json:"ref"`
	CheckoutSHA       *string  `json:"checkout_sha"`
	UserName          string   `json:"user_name"`
	UserUsername      string   `json:"user_username"`
	UserAvatar        string   `json:"user_avatar"`
	Project           *Project `json:"project"`
	Commits           []Commit `json:"commits"`
	TotalCommitsCount int      `json:"total_commits_count"`
}

// TagPushEvent is the payload of "Tag Push Hook"
type TagPushEvent struct {
	Before      string   `json:"before"`
	After       string   `json:"after"`
	Ref         string   `json:"ref"`
	CheckoutSHA *string  `json:"checkout_sha"`
	UserName    string   `json:"user_name"`
	UserAvatar  string   `json:"user_avatar"`
	Project     *Project `json:"project"`
}

// MergeRequestEvent is the payload of "Merge Request Hook"
type MergeRequestEvent struct {
	User             *User                   `json:"user"`
	Project          *Project                `json:"project"`
	ObjectAttributes *MergeRequestAttributes `json:"object_attributes"`
	Assignees        []User                  `json:"assignees"`
}

// MergeRequestAttributes is object_attributes of a merge request event
type MergeRequestAttributes struct {
	ID           int64    `json:"id"`
	IID          int64    `json:"iid"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Action       string   `json:"action"`
	State        string   `json:"state"`
	SourceBranch string   `json:"source_branch"`
	TargetBranch string   `json:"target_branch"`
	Source       *Project `json:"source"`
	Target       *Project `json:"target"`
	LastCommit   *Commit  `json:"last_commit"`
	Assignee     *User    `json:"assignee"`
}

// NoteEvent is the payload of "Note Hook". One of MergeRequest, Commit,
// Issue and Snippet is set depending on the noteable type.
type NoteEvent struct {
	User             *User           `json:"user"`
	Project          *Project        `json:"project"`
	ObjectAttributes *NoteAttributes `json:"object_attributes"`
	MergeRequest     *MergeRequest   `json:"merge_request"`
	Commit           *Commit         `json:"commit"`
	Issue            *Issue          `json:"issue"`
	Snippet          *Snippet        `json:"snippet"`
}

// NoteAttributes is object_attributes of a note event
type NoteAttributes struct {
	ID           int64  `json:"id"`
	Note         string `json:"note"`
	NoteableType string `json:"noteable_type"`
	URL          string `json:"url"`
}

// MergeRequest is the merge request a note is attached to
type MergeRequest struct {
	ID         int64   `json:"id"`
	IID        int64   `json:"iid"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Assignee   *User   `json:"assignee"`
	LastCommit *Commit `json:"last_commit"`
}

// Issue is the issue a note is attached to
type Issue struct {
	ID    int64  `json:"id"`
	IID   int64  `json:"iid"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Snippet is the code snippet a note is attached to
type Snippet struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// IssueEvent is the payload of "Issue Hook"
type IssueEvent struct {
	User             *User            `json:"user"`
	Project          *Project         `json:"project"`
	Assignee         *User            `json:"assignee"`
	Assignees        []User           `json:"assignees"`
	ObjectAttributes *IssueAttributes `json:"object_attributes"`
}

// IssueAttributes is object_attributes of an issue event
type IssueAttributes struct {
	ID          int64  `json:"id"`
	IID         int64  `json:"iid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
	Action      string `json:"action"`
	URL         string `json:"url"`
}

// PipelineEvent is the payload of "Pipeline Hook"
type PipelineEvent struct {
	User             *User               `json:"user"`
	Project          *Project            `json:"project"`
	ObjectAttributes *PipelineAttributes `json:"object_attributes"`
}

// PipelineAttributes is object_attributes of a pipeline event
type PipelineAttributes struct {
	ID       int64    `json:"id"`
	Ref      string   `json:"ref"`
	Status   string   `json:"status"`
	Duration *float64 `json:"duration"`
}
