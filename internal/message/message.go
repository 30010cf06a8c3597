package message

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

// DemoUserID stands for the signed in user in the demo conversations.
const DemoUserID = "me"

const (
	timestampNow     = "Agora"
	ownMessageAuthor = "Recrutador / Candidato"
)

var ErrEmptyMessage = errors.New("message content cannot be empty")

type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
	Read       bool   `json:"read"`
}

type Conversation struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	LastMessage string `json:"lastMessage"`
	Timestamp   string `json:"timestamp"`
	Unread      bool   `json:"unread"`
}

var MockMessages = []Message{
	{ID: "m1", SenderID: "u2", ReceiverID: DemoUserID, SenderName: "João Manganhela", Content: "Bom dia, gostaria de saber mais sobre a vaga de React.", Timestamp: "10:30", Read: false},
	{ID: "m2", SenderID: DemoUserID, ReceiverID: "u2", SenderName: "Eu", Content: "Olá João! Claro, o que gostaria de saber?", Timestamp: "10:35", Read: true},
	{ID: "m3", SenderID: "u3", ReceiverID: DemoUserID, SenderName: "Maria Silva", Content: "Segunda-feira disponível para entrevista?", Timestamp: "Ontem", Read: true},
}

// Repository keeps messages in memory. Every user gets their own copy of
// the demo conversations the first time they are looked up.
type Repository struct {
	mu       sync.Mutex
	demo     []Message
	messages []Message
	seeded   map[string]bool
	policy   *bluemonday.Policy
}

func NewRepository(demo []Message) *Repository {
	cp := make([]Message, len(demo))
	copy(cp, demo)
	return &Repository{
		demo:   cp,
		seeded: make(map[string]bool),
		policy: bluemonday.StrictPolicy(),
	}
}

// Conversations returns one entry per counterpart in order of first contact.
func (r *Repository) Conversations(userID string) []Conversation {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seed(userID)

	var order []string
	byUser := make(map[string][]Message)
	for _, m := range r.messages {
		other, ok := counterpart(m, userID)
		if !ok {
			continue
		}
		if _, seen := byUser[other]; !seen {
			order = append(order, other)
		}
		byUser[other] = append(byUser[other], m)
	}
	res := make([]Conversation, 0, len(order))
	for _, other := range order {
		msgs := byUser[other]
		last := msgs[len(msgs)-1]
		name := last.SenderName
		if last.SenderID == userID {
			name = ownMessageAuthor
		}
		var unread bool
		for _, m := range msgs {
			if m.ReceiverID == userID && !m.Read {
				unread = true
				break
			}
		}
		res = append(res, Conversation{
			UserID:      other,
			Name:        name,
			LastMessage: last.Content,
			Timestamp:   last.Timestamp,
			Unread:      unread,
		})
	}
	return res
}

// Thread returns the messages exchanged between userID and otherID.
func (r *Repository) Thread(userID, otherID string) []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seed(userID)

	res := make([]Message, 0)
	for _, m := range r.messages {
		if (m.SenderID == userID && m.ReceiverID == otherID) || (m.SenderID == otherID && m.ReceiverID == userID) {
			res = append(res, m)
		}
	}
	return res
}

func (r *Repository) Send(from, to, senderName, content string) (Message, error) {
	content = strings.TrimSpace(r.policy.Sanitize(content))
	if content == "" {
		return Message{}, ErrEmptyMessage
	}
	if to == "" {
		return Message{}, errors.New("message receiver cannot be empty")
	}
	m := Message{
		ID:         ksuid.New().String(),
		SenderID:   from,
		ReceiverID: to,
		SenderName: senderName,
		Content:    content,
		Timestamp:  timestampNow,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seed(from)
	r.messages = append(r.messages, m)
	return m, nil
}

// MarkRead flags every message from otherID to userID as read and returns
// how many changed.
func (r *Repository) MarkRead(userID, otherID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seed(userID)

	var n int
	for i := range r.messages {
		m := &r.messages[i]
		if m.SenderID == otherID && m.ReceiverID == userID && !m.Read {
			m.Read = true
			n++
		}
	}
	return n
}

func (r *Repository) UnreadCount(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seed(userID)

	var n int
	for _, m := range r.messages {
		if m.ReceiverID == userID && !m.Read {
			n++
		}
	}
	return n
}

// seed must be called with mu held.
func (r *Repository) seed(userID string) {
	if userID == "" || r.seeded[userID] {
		return
	}
	r.seeded[userID] = true
	for _, m := range r.demo {
		m.ID = userID + "-" + m.ID
		if m.SenderID == DemoUserID {
			m.SenderID = userID
		}
		if m.ReceiverID == DemoUserID {
			m.ReceiverID = userID
		}
		r.messages = append(r.messages, m)
	}
}

func counterpart(m Message, userID string) (string, bool) {
	switch userID {
	case m.SenderID:
		return m.ReceiverID, true
	case m.ReceiverID:
		return m.SenderID, true
	}
	return "", false
}
