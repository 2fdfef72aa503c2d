package contacts

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// IDPolicy decides which id a newly added contact receives
type IDPolicy int

const (
	// IDPolicyLength assigns len(contacts)+1. After a delete this can collide
	// with an id that is still present.
	IDPolicyLength IDPolicy = iota
	// IDPolicyNext assigns max(ids)+1, which never collides.
	IDPolicyNext
)

// ParseIDPolicy maps a config value onto an IDPolicy
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch s {
	case "", "length":
		return IDPolicyLength, nil
	case "next":
		return IDPolicyNext, nil
	}
	return IDPolicyLength, fmt.Errorf("unknown id policy %q", s)
}

func (p IDPolicy) String() string {
	if p == IDPolicyNext {
		return "next"
	}
	return "length"
}

// NextID returns the id the policy would assign to the next added contact
func (p IDPolicy) NextID(list []Contact) int {
	if p == IDPolicyNext {
		highest := 0
		for _, c := range list {
			highest = max(highest, c.ID)
		}
		return highest + 1
	}
	return len(list) + 1
}

// NewContact builds the placeholder record Add appends
func NewContact(id int) Contact {
	return Contact{
		ID:     id,
		Name:   fmt.Sprintf("New Contact %d", id),
		Email:  fmt.Sprintf("new%d@gmail.com", id),
		Age:    25,
		Phone:  "+91 0000000000",
		Access: AccessUser,
	}
}

// Add returns a new slice with one placeholder contact appended
func Add(list []Contact, policy IDPolicy) []Contact {
	out := make([]Contact, len(list), len(list)+1)
	copy(out, list)
	return append(out, NewContact(policy.NextID(list)))
}

// Delete returns a new slice without the contacts whose id matches. An
// absent id yields an equal copy.
func Delete(list []Contact, id int) []Contact {
	out := make([]Contact, 0, len(list))
	for _, c := range list {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Store owns the session's contact list. It is the only writer.
type Store struct {
	contacts []Contact
	policy   IDPolicy
	logger   *zap.Logger
}

// NewStore creates a store seeded with the fixture records
func NewStore(policy IDPolicy, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		contacts: Fixtures(),
		policy:   policy,
		logger:   logger.Named("store"),
	}
}

// Contacts returns a copy of the current list
func (s *Store) Contacts() []Contact {
	return slices.Clone(s.contacts)
}

// Len returns the number of contacts
func (s *Store) Len() int {
	return len(s.contacts)
}

// Get returns the contact with the given id
func (s *Store) Get(id int) (Contact, bool) {
	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// Add appends a placeholder contact and returns it
func (s *Store) Add() Contact {
	s.contacts = Add(s.contacts, s.policy)
	added := s.contacts[len(s.contacts)-1]

	if n := s.countID(added.ID); n > 1 {
		s.logger.Warn("added contact shares its id",
			zap.Int("id", added.ID),
			zap.Int("count", n),
			zap.Stringer("policy", s.policy))
	}
	s.logger.Info("contact added", zap.Int("id", added.ID), zap.Int("total", len(s.contacts)))
	return added
}

// Delete removes the contact with the given id. It reports whether anything
// was removed.
func (s *Store) Delete(id int) bool {
	before := len(s.contacts)
	s.contacts = Delete(s.contacts, id)
	removed := len(s.contacts) < before

	if removed {
		s.logger.Info("contact deleted", zap.Int("id", id), zap.Int("total", len(s.contacts)))
	} else {
		s.logger.Debug("delete of absent contact ignored", zap.Int("id", id))
	}
	return removed
}

// Edit accepts an edit request and changes nothing. Records have no update
// path; the action exists so the menu entry stays wired.
func (s *Store) Edit(id int) bool {
	s.logger.Debug("edit requested", zap.Int("id", id))
	return false
}

func (s *Store) countID(id int) int {
	n := 0
	for _, c := range s.contacts {
		if c.ID == id {
			n++
		}
	}
	return n
}
