// Package share encodes the task collection into an opaque, reversible
// link payload. The encoding is a transport, not a security boundary:
// anyone holding the link can decode it.
package share

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/theme"
)

// DefaultOrigin is the origin used for generated links when the caller
// does not provide one.
const DefaultOrigin = "https://taskdeck.app"

// pathSegment separates the origin from the encoded payload.
const pathSegment = "/share/"

// Payload is the structure embedded in a share link.
type Payload struct {
	Tasks     model.Collection `json:"tasks"`
	Theme     theme.Scheme     `json:"theme,omitempty"`
	Timestamp string           `json:"timestamp"`
}

// NewPayload builds a payload for the given collection and theme.
func NewPayload(c model.Collection, scheme theme.Scheme, now time.Time) Payload {
	return Payload{
		Tasks:     c,
		Theme:     scheme,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

// Encode serializes the payload to its opaque blob form.
func Encode(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// Link builds a full share link for the payload.
func Link(origin string, p Payload) (string, error) {
	if origin == "" {
		origin = DefaultOrigin
	}
	blob, err := Encode(p)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(origin, "/") + pathSegment + blob, nil
}

// Decode recovers a payload from a share link or a bare encoded blob.
func Decode(link string) (Payload, error) {
	blob := strings.TrimSpace(link)
	if i := strings.LastIndex(blob, pathSegment); i >= 0 {
		blob = blob[i+len(pathSegment):]
	}
	if blob == "" {
		return Payload{}, errors.ErrInvalidShare
	}

	data, err := base64.URLEncoding.DecodeString(blob)
	if err != nil {
		// Tolerate standard-alphabet blobs from older links.
		data, err = base64.StdEncoding.DecodeString(blob)
		if err != nil {
			return Payload{}, errors.ErrInvalidShare
		}
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, errors.ErrInvalidShare
	}
	if p.Tasks == nil {
		return Payload{}, errors.ErrInvalidShare
	}
	return p, nil
}
