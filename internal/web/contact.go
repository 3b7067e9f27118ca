package web

import (
	"errors"
	"folio/internal/contact"
	"folio/internal/metrics"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) handleContactForm(c *gin.Context) {
	sub := contact.Submission{
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		Subject:    c.PostForm("subject"),
		Message:    c.PostForm("message"),
		Type:       c.PostForm("type"),
		Newsletter: checked(c.PostForm("newsletter")),
	}

	out, err := s.contact.Submit(c.Request.Context(), sub)

	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		s.metrics.Contact(metrics.OutcomeInvalid)
		redirectWithNotice(c, "contact", missingFieldNotice(verr.Field), nil)
		return
	case err != nil:
		c.Error(err)
		redirectWithNotice(c, "contact", noticeSendFailed, nil)
		return
	}

	if out.ArchiveErr != nil {
		s.logger.Warn("contact message not archived", zap.Error(out.ArchiveErr))
	}

	if out.Delivered {
		s.metrics.Contact(metrics.OutcomeDelivered)
		redirectWithNotice(c, "contact", noticeMessageSent, nil)
		return
	}

	s.metrics.Contact(metrics.OutcomeFallback)
	redirectWithNotice(c, "contact", noticeMailtoFallback, url.Values{"mailto": {out.MailtoURL}})
}

// checked reads an HTML checkbox, which posts "on" when ticked.
func checked(v string) bool {
	if v == "on" {
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}
