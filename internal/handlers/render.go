package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/collabhub/internal/dto"
	apierrors "github.com/yukikurage/collabhub/internal/errors"
	"github.com/yukikurage/collabhub/internal/middleware"
	"github.com/yukikurage/collabhub/internal/services"
)

// render answers with the named template, or with data as JSON when the client asks for it.
func render(c *gin.Context, status int, name string, data interface{}) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{gin.MIMEHTML, gin.MIMEJSON},
		HTMLName: name,
		Data:     data,
	})
}

func viewer(c *gin.Context) dto.Viewer {
	identity, _ := middleware.CurrentIdentity(c)
	return dto.Viewer{
		ID:       identity.UserID,
		Name:     identity.Name,
		UserType: string(identity.UserType),
	}
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalid):
		apierrors.BadRequest(c, err.Error())
	default:
		log.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		apierrors.InternalError(c, "")
	}
}

// optionalID parses an optional numeric query or form value.
// Empty and malformed values yield nil.
func optionalID(raw string) *uint64 {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// checkbox binds an HTML checkbox or a JSON boolean.
type checkbox bool

// UnmarshalParam implements binding.BindUnmarshaler.
func (b *checkbox) UnmarshalParam(param string) error {
	*b = checkbox(param == "true" || param == "on")
	return nil
}

func (b *checkbox) UnmarshalJSON(data []byte) error {
	s := string(data)
	*b = checkbox(s == "true" || s == `"true"` || s == `"on"`)
	return nil
}

// idParam binds a numeric id sent as a form value, a JSON string or a JSON number.
type idParam string

// UnmarshalParam implements binding.BindUnmarshaler.
func (p *idParam) UnmarshalParam(param string) error {
	*p = idParam(param)
	return nil
}

func (p *idParam) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	} else if s == "null" {
		s = ""
	}
	*p = idParam(s)
	return nil
}

func (p idParam) parse() (uint64, error) {
	return strconv.ParseUint(string(p), 10, 64)
}
