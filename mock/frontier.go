package mock

import (
	"context"

	"github.com/fwojciec/botica"
)

var _ botica.URLSet = (*URLSet)(nil)

// URLSet is a mock implementation of botica.URLSet.
type URLSet struct {
	AddFn  func(url string) bool
	SeenFn func(url string) bool
	LenFn  func() int
}

func (s *URLSet) Add(url string) bool {
	return s.AddFn(url)
}

func (s *URLSet) Seen(url string) bool {
	return s.SeenFn(url)
}

func (s *URLSet) Len() int {
	return s.LenFn()
}

var _ botica.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of botica.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
