package authfakes

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-spotify-auth/auth"
	"github.com/jrsteele09/go-spotify-auth/oauthmodel"
)

var _ auth.TokenExchanger = (*FakeTokenExchanger)(nil)

// ExchangeCall records the arguments of one Exchange invocation.
type ExchangeCall struct {
	Code     string
	Verifier string
}

// FakeTokenExchanger is a configurable TokenExchanger for tests. Set the
// bundle/err fields before use; invocations are recorded for assertions.
type FakeTokenExchanger struct {
	ExchangeBundle *oauthmodel.TokenBundle
	ExchangeErr    error
	RefreshBundle  *oauthmodel.TokenBundle
	RefreshErr     error

	lock          sync.Mutex
	exchangeCalls []ExchangeCall
	refreshCalls  []string
}

func NewFakeTokenExchanger() *FakeTokenExchanger {
	return &FakeTokenExchanger{}
}

func (f *FakeTokenExchanger) Exchange(_ context.Context, code, verifier string) (*oauthmodel.TokenBundle, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.exchangeCalls = append(f.exchangeCalls, ExchangeCall{Code: code, Verifier: verifier})
	if f.ExchangeErr != nil {
		return nil, f.ExchangeErr
	}
	return f.ExchangeBundle, nil
}

func (f *FakeTokenExchanger) Refresh(_ context.Context, refreshToken string) (*oauthmodel.TokenBundle, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.refreshCalls = append(f.refreshCalls, refreshToken)
	if f.RefreshErr != nil {
		return nil, f.RefreshErr
	}
	return f.RefreshBundle, nil
}

func (f *FakeTokenExchanger) ExchangeCalls() []ExchangeCall {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]ExchangeCall(nil), f.exchangeCalls...)
}

func (f *FakeTokenExchanger) RefreshCalls() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]string(nil), f.refreshCalls...)
}
