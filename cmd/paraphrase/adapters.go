package main

import (
	"net/http"
	"time"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/adapter"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/config"
)

const defaultLlamaCppModel = "qwen2.5-1.5b-gpu"

type registry struct {
	adapters     map[string]adapter.LLMAdapter
	models       []adapter.ModelInfo
	defaultModel string
}

func (r *registry) add(id, provider, label string, a adapter.LLMAdapter) {
	r.adapters[id] = a
	r.models = append(r.models, adapter.ModelInfo{ID: id, Name: label + " (" + id + ")", Provider: provider})
}

// buildAdapters registers one adapter per configured backend, keyed by model
// ID. Gemini is always registered; it reports unavailable without a key.
func buildAdapters(cfg config.Config, useMock bool) registry {
	reg := registry{adapters: make(map[string]adapter.LLMAdapter)}

	if useMock {
		reg.add("mock", "mock", "Mock", &adapter.MockAdapter{Delay: 500 * time.Millisecond})
		reg.defaultModel = "mock"
		return reg
	}

	client := &http.Client{Timeout: cfg.RequestTimeout}

	reg.add(cfg.GeminiModel, "gemini", "Gemini", &adapter.GeminiAdapter{
		APIKey:          cfg.GeminiAPIKey,
		Model:           cfg.GeminiModel,
		MaxOutputTokens: cfg.MaxOutputTokens,
		Client:          client,
	})

	if cfg.ClaudeAPIKey != "" {
		reg.add(cfg.ClaudeModel, "claude", "Claude", &adapter.ClaudeAdapter{
			APIKey: cfg.ClaudeAPIKey,
			Model:  cfg.ClaudeModel,
			Client: client,
		})
	}

	if cfg.OpenAIAPIKey != "" {
		reg.add(cfg.OpenAIModel, "openai", "OpenAI", &adapter.OpenAIAdapter{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
			Client: client,
		})
	}

	if cfg.LlamaCppURL != "" {
		model := cfg.LlamaCppModel
		if model == "" {
			model = defaultLlamaCppModel
		}
		reg.add(model, "llamacpp", "llama.cpp", &adapter.LlamaCppAdapter{
			BaseURL: cfg.LlamaCppURL,
			Model:   model,
			Client:  client,
		})
	}

	if cfg.OllamaURL != "" {
		reg.add(cfg.OllamaModel, "ollama", "Ollama", &adapter.OllamaAdapter{
			BaseURL: cfg.OllamaURL,
			Model:   cfg.OllamaModel,
			Client:  client,
		})
	}

	reg.defaultModel = cfg.GeminiModel
	if _, ok := reg.adapters[cfg.DefaultModel]; ok {
		reg.defaultModel = cfg.DefaultModel
	}
	return reg
}
