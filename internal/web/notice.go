package web

import (
	"folio/internal/present"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	KindSuccess = "success"
	KindError   = "error"
)

// Notices travel through the redirect as a code; the page only ever shows
// text from this table.
const (
	noticeProjectAdded    = "project-added"
	noticeProjectDeleted  = "project-deleted"
	noticeProjectNotFound = "project-not-found"
	noticeNotSaved        = "not-saved"
	noticeTitleRequired   = "title-required"
	noticeProjectForm     = "project-form"
	noticeAddFailed       = "add-failed"
	noticeMessageSent     = "message-sent"
	noticeMailtoFallback  = "mailto-fallback"
	noticeSendFailed      = "send-failed"
	noticeMissingName     = "missing-name"
	noticeMissingEmail    = "missing-email"
	noticeMissingSubject  = "missing-subject"
	noticeMissingMessage  = "missing-message"
)

var notices = map[string]present.Notice{
	noticeProjectAdded:    {Message: "Project added successfully!", Kind: KindSuccess},
	noticeProjectDeleted:  {Message: "Project deleted successfully!", Kind: KindSuccess},
	noticeProjectNotFound: {Message: "That project no longer exists.", Kind: KindError},
	noticeNotSaved:        {Message: "The change was applied but could not be saved. It will be lost on restart.", Kind: KindError},
	noticeTitleRequired:   {Message: "Could not add project: project title cannot be empty", Kind: KindError},
	noticeProjectForm:     {Message: "Could not read the project form.", Kind: KindError},
	noticeAddFailed:       {Message: "Could not add project.", Kind: KindError},
	noticeMessageSent:     {Message: "Message sent successfully! 📧", Kind: KindSuccess},
	noticeMailtoFallback:  {Message: "Direct sending failed. Opening email client as backup... 📧", Kind: KindSuccess},
	noticeSendFailed:      {Message: "Could not send your message.", Kind: KindError},
	noticeMissingName:     {Message: "Please fill in the name field.", Kind: KindError},
	noticeMissingEmail:    {Message: "Please fill in the email field.", Kind: KindError},
	noticeMissingSubject:  {Message: "Please fill in the subject field.", Kind: KindError},
	noticeMissingMessage:  {Message: "Please fill in the message field.", Kind: KindError},
}

// redirectWithNotice finishes a form post by sending the browser back to the
// page with the notice code in the query string.
func redirectWithNotice(c *gin.Context, fragment, code string, extra url.Values) {
	q := url.Values{}
	for k, v := range extra {
		q[k] = v
	}
	if code != "" {
		q.Set("notice", code)
	}

	target := "/"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	if fragment != "" {
		target += "#" + fragment
	}
	c.Redirect(http.StatusSeeOther, target)
}

// noticeFromQuery shows nothing for codes outside the table.
func noticeFromQuery(q url.Values) present.Notice {
	return notices[q.Get("notice")]
}

// mailtoFromQuery keeps the fallback link only when it addresses the site
// owner, so a crafted link cannot point visitors at another mailbox.
func mailtoFromQuery(q url.Values, owner string) string {
	m := q.Get("mailto")
	u, err := url.Parse(m)
	if err != nil || u.Scheme != "mailto" || owner == "" {
		return ""
	}
	if !strings.EqualFold(u.Opaque, owner) {
		return ""
	}
	return m
}

func missingFieldNotice(field string) string {
	switch field {
	case "name":
		return noticeMissingName
	case "email":
		return noticeMissingEmail
	case "subject":
		return noticeMissingSubject
	default:
		return noticeMissingMessage
	}
}
