package internal

// Config is the full environment surface of the agent. Secrets come in
// through the environment only; nothing here is ever logged verbatim.
type Config struct {
	LogLevel        string `env:"LOG_LEVEL,default=INFO"`
	EventBufferSize int    `env:"EVENT_BUFFER_SIZE,default=64"`
	FlushThreshold  int    `env:"FLUSH_THRESHOLD,default=4"`

	LiveKitURL       string `env:"LIVEKIT_URL,required=true"`
	LiveKitAPIKey    string `env:"LIVEKIT_API_KEY,required=true"`
	LiveKitAPISecret string `env:"LIVEKIT_API_SECRET,required=true"`
	RoomName         string `env:"ROOM_NAME,required=true"`
	AgentIdentity    string `env:"AGENT_IDENTITY,default=kai-agent"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY,required=true"`
	RealtimeModel string `env:"REALTIME_MODEL"`
	RealtimeVoice string `env:"REALTIME_VOICE"`

	KaiAPIBaseURL string `env:"KAI_API_BASE_URL,required=true"`
	KaiSecretKey  string `env:"KAI_SECRET_KEY,required=true"`

	LangfuseHost      string `env:"LANGFUSE_HOST,required=true"`
	LangfusePublicKey string `env:"LANGFUSE_PUBLIC_KEY,required=true"`
	LangfuseSecretKey string `env:"LANGFUSE_SECRET_KEY,required=true"`
	PromptConfigPath  string `env:"PROMPT_CONFIG_PATH"`

	AvatarName       string `env:"AVATAR_NAME"`
	AvatarConfigPath string `env:"AVATAR_CONFIG_PATH,default=avatar_config.json"`
	BeyAPIKey        string `env:"BEY_API_KEY"`
	AnamAPIKey       string `env:"ANAM_API_KEY"`

	TranscriptExportEnabled bool   `env:"TRANSCRIPT_EXPORT_ENABLED,default=false"`
	TranscriptExportDir     string `env:"TRANSCRIPT_EXPORT_DIR"`
	EvalStoreURL            string `env:"EVAL_STORE_URL"`
	EvalStoreAPIKey         string `env:"EVAL_STORE_API_KEY"`
}
