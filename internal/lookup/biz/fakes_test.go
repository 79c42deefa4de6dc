package biz

import (
	"context"

	aitypes "github.com/lk2023060901/callerguard-backend/internal/ai/provider/types"
	wstypes "github.com/lk2023060901/callerguard-backend/internal/websearch/types"
)

type fakeSearcher struct {
	resp  *wstypes.SearchResponse
	err   error
	calls []*wstypes.SearchRequest
}

func (f *fakeSearcher) Search(_ context.Context, req *wstypes.SearchRequest) (*wstypes.SearchResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeSearcher) GetID() wstypes.ProviderID { return wstypes.ProviderSerper }
func (f *fakeSearcher) GetName() string           { return "fake" }
func (f *fakeSearcher) Validate() error           { return nil }

type fakeLLM struct {
	resp  *aitypes.ChatCompletionResponse
	err   error
	calls []aitypes.ChatCompletionRequest
}

func (f *fakeLLM) CreateChatCompletion(_ context.Context, req aitypes.ChatCompletionRequest) (*aitypes.ChatCompletionResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeLLM) Name() string { return "fake" }
func (f *fakeLLM) Close() error { return nil }

func reply(content string) *aitypes.ChatCompletionResponse {
	return &aitypes.ChatCompletionResponse{
		Choices: []aitypes.Choice{{Message: aitypes.Message{Role: aitypes.RoleAssistant, Content: content}}},
	}
}

type fixedCounter int

func (c fixedCounter) Count(string) int { return int(c) }
