package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"jobportal/internal/models"
)

// Name of the session cookie.
const Name = "jobportal_session"

const identityKey = "identity"

// Identity is the single per-browser identity. Exactly one variant is
// active at a time: anonymous (zero value), HR, or employee with the
// name entered at login. Logging in as one role replaces the other.
type Identity struct {
	Role string
	Name string
}

func (i Identity) IsHR() bool       { return i.Role == models.RoleHR }
func (i Identity) IsEmployee() bool { return i.Role == models.RoleEmployee }

// Flash is a one-time status message shown on the next rendered page.
// Category matches the usual alert levels: success, danger, warning, info.
type Flash struct {
	Category string
	Message  string
}

func init() {
	// Cookie store serializes session values with gob.
	gob.Register(Identity{})
	gob.Register(Flash{})
}

// Middleware installs the signed-cookie session on the router.
func Middleware(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	return sessions.Sessions(Name, store)
}

// Current returns the identity for this request, anonymous if none is set.
func Current(c *gin.Context) Identity {
	s := sessions.Default(c)
	if v, ok := s.Get(identityKey).(Identity); ok {
		return v
	}
	return Identity{}
}

// The mutators below only stage changes. The session must be written
// exactly once per request: a second write re-adds the Set-Cookie
// header, and clients that keep both copies resubmit the stale first
// one. Handlers call Save before redirecting; rendered pages persist
// through TakeFlashes instead.

// LoginHR replaces whatever identity the session held with HR.
func LoginHR(c *gin.Context) {
	setIdentity(c, Identity{Role: models.RoleHR})
}

// LoginEmployee replaces whatever identity the session held with the
// named employee.
func LoginEmployee(c *gin.Context, name string) {
	setIdentity(c, Identity{Role: models.RoleEmployee, Name: name})
}

// Logout drops the identity but keeps any pending flashes.
func Logout(c *gin.Context) {
	sessions.Default(c).Delete(identityKey)
}

func setIdentity(c *gin.Context, ident Identity) {
	sessions.Default(c).Set(identityKey, ident)
}

// AddFlash queues a one-time message for the next rendered page.
func AddFlash(c *gin.Context, category, message string) {
	sessions.Default(c).AddFlash(Flash{Category: category, Message: message})
}

// Save writes the staged session state into the response cookie.
func Save(c *gin.Context) error {
	return sessions.Default(c).Save()
}

// TakeFlashes drains all queued flashes and persists the session, so a
// rendered page is also the single write for the request.
func TakeFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(); err != nil {
		log.Errorf("session save: %v", err)
	}
	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	return out
}
