package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o"

	// DefaultBaseURL is the OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DeepSeekBaseURL and QwenBaseURL serve the same chat completions contract.
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	roleSystem = "system"

	responseFormatJSONObject = "json_object"
)
