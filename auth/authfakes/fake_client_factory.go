package authfakes

import (
	"sync"

	"github.com/jrsteele09/go-spotify-auth/auth"
	"github.com/jrsteele09/go-spotify-auth/spotify"
)

var _ auth.ClientFactory = (*FakeClientFactory)(nil)

// FakeClientFactory builds real (offline) spotify clients while recording
// the access tokens it was handed.
type FakeClientFactory struct {
	lock        sync.Mutex
	builtTokens []string
}

func NewFakeClientFactory() *FakeClientFactory {
	return &FakeClientFactory{}
}

func (f *FakeClientFactory) Build(accessToken string) *spotify.Client {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.builtTokens = append(f.builtTokens, accessToken)
	return spotify.NewClient(accessToken)
}

func (f *FakeClientFactory) BuiltTokens() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]string(nil), f.builtTokens...)
}
