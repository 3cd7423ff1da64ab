package app

import "net/http"

type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a user-facing message returned by a controller action. The host
// decides how to present it. Code is set for notices that survive a redirect.
type Notice struct {
	Level   NoticeLevel
	Code    string
	Message string
}

var (
	NoticeReviewSubmitted = Notice{Level: NoticeInfo, Code: "review-submitted", Message: "Review submitted successfully!"}
	NoticeNoPlaceID       = Notice{Level: NoticeError, Code: "no-place-id", Message: "No place ID provided. Redirecting to home page."}
)

var noticesByCode = map[string]Notice{
	NoticeReviewSubmitted.Code: NoticeReviewSubmitted,
	NoticeNoPlaceID.Code:       NoticeNoPlaceID,
}

// NoticeFor looks up a redirect-carried notice.
func NoticeFor(code string) (Notice, bool) {
	n, ok := noticesByCode[code]
	return n, ok
}

func errorNotice(msg string) *Notice { return &Notice{Level: NoticeError, Message: msg} }

func notice(n Notice) *Notice { return &n }

// Result is the outcome of a controller action.
type Result struct {
	Navigate string // leave the page for this URL
	Reload   bool   // leave the page for itself
	Notice   *Notice
	Status   int   // HTTP status of a rendered page; 0 means 200
	Err      error // cause, for logs only
}

// Leaves reports whether the host should redirect instead of rendering.
func (r Result) Leaves() bool { return r.Navigate != "" || r.Reload }

func (r Result) HTTPStatus() int {
	if r.Status == 0 {
		return http.StatusOK
	}
	return r.Status
}
