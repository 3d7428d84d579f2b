package catalog

import "github.com/yankeeinlondon/schematic/define"

// elevenLabsCredentials is the fallback chain shared by the REST and
// WebSocket definitions.
func elevenLabsCredentials() []string {
	return []string{"ELEVEN_LABS_API_KEY", "ELEVENLABS_API_KEY"}
}

// ElevenLabs returns the ElevenLabs Creative Platform API definition:
// text-to-speech, voice management, sound generation, history, and
// workspace administration.
func ElevenLabs() *define.API {
	return &define.API{
		Name:              "ElevenLabs",
		Description:       "ElevenLabs Creative Platform API for text-to-speech, voice management, and sound generation",
		BaseURL:           "https://api.elevenlabs.io",
		DocsURL:           "https://elevenlabs.io/docs/api-reference",
		Auth:              define.APIKeyAuth("xi-api-key"),
		CredentialEnvVars: elevenLabsCredentials(),
		Endpoints: []define.Endpoint{
			// text-to-speech
			{
				ID:          "CreateSpeech",
				Method:      define.MethodPost,
				Path:        "/v1/text-to-speech/{voice_id}",
				Description: "Converts text into speech and returns audio",
				Request:     define.JSONBodyType("CreateSpeechBody"),
				Response:    define.BinaryResponse(),
			},
			{
				ID:          "StreamSpeech",
				Method:      define.MethodPost,
				Path:        "/v1/text-to-speech/{voice_id}/stream",
				Description: "Streams audio as it's generated",
				Request:     define.JSONBodyType("CreateSpeechBody"),
				Response:    define.BinaryResponse(),
			},
			{
				ID:          "CreateSpeechWithTimestamps",
				Method:      define.MethodPost,
				Path:        "/v1/text-to-speech/{voice_id}/with-timestamps",
				Description: "Returns audio with character-level timing information",
				Request:     define.JSONBodyType("CreateSpeechBody"),
				Response:    define.JSONResponseType("SpeechWithTimestampsResponse"),
			},
			{
				ID:          "StreamSpeechWithTimestamps",
				Method:      define.MethodPost,
				Path:        "/v1/text-to-speech/{voice_id}/stream/with-timestamps",
				Description: "Streams audio chunks with timing information",
				Request:     define.JSONBodyType("CreateSpeechBody"),
				Response:    define.JSONResponseType("SpeechWithTimestampsResponse"),
			},

			// voices
			{
				ID:          "ListVoices",
				Method:      define.MethodGet,
				Path:        "/v2/voices",
				Description: "Lists all available voices",
				Response:    define.JSONResponseType("ListVoicesResponse"),
			},
			{
				ID:          "GetVoice",
				Method:      define.MethodGet,
				Path:        "/v1/voices/{voice_id}",
				Description: "Retrieves a voice by ID",
				Response:    define.JSONResponseType("VoiceResponseModel"),
			},
			{
				ID:          "DeleteVoice",
				Method:      define.MethodDelete,
				Path:        "/v1/voices/{voice_id}",
				Description: "Deletes a voice",
				Response:    define.JSONResponseType("StatusResponse"),
			},

			// voice settings
			{
				ID:          "GetDefaultVoiceSettings",
				Method:      define.MethodGet,
				Path:        "/v1/voices/settings/default",
				Description: "Gets default voice settings",
				Response:    define.JSONResponseType("VoiceSettings"),
			},
			{
				ID:          "GetVoiceSettings",
				Method:      define.MethodGet,
				Path:        "/v1/voices/{voice_id}/settings",
				Description: "Gets voice settings for a specific voice",
				Response:    define.JSONResponseType("VoiceSettings"),
			},
			{
				ID:          "UpdateVoiceSettings",
				Method:      define.MethodPost,
				Path:        "/v1/voices/{voice_id}/settings/edit",
				Description: "Updates voice settings",
				Request:     define.JSONBodyType("VoiceSettings"),
				Response:    define.JSONResponseType("StatusResponse"),
			},

			// voice samples
			{
				ID:          "GetVoiceSampleAudio",
				Method:      define.MethodGet,
				Path:        "/v1/voices/{voice_id}/samples/{sample_id}/audio",
				Description: "Gets audio for a voice sample",
				Response:    define.BinaryResponse(),
			},
			{
				ID:          "DeleteVoiceSample",
				Method:      define.MethodDelete,
				Path:        "/v1/voices/{voice_id}/samples/{sample_id}",
				Description: "Deletes a voice sample",
				Response:    define.JSONResponseType("StatusResponse"),
			},
			{
				ID:          "AddVoiceSample",
				Method:      define.MethodPost,
				Path:        "/v1/voices/{voice_id}/samples",
				Description: "Upload audio sample for voice cloning",
				Request: define.FormData(
					define.FileFieldAccept("audio", "audio/*").
						WithDescription("Audio file (mp3, wav, ogg, m4a)"),
					define.TextField("name").
						Optional().
						WithDescription("Name for the sample"),
				),
				Response: define.JSONResponseType("AddSampleResponse"),
			},

			// voice library
			{
				ID:          "ListSharedVoices",
				Method:      define.MethodGet,
				Path:        "/v1/shared-voices",
				Description: "Lists voices from the public library",
				Response:    define.JSONResponseType("ListSharedVoicesResponse"),
			},
			{
				ID:          "AddSharedVoice",
				Method:      define.MethodPost,
				Path:        "/v1/voices/add/{public_user_id}/{voice_id}",
				Description: "Adds a shared voice to your library",
				Request:     define.JSONBodyType("AddSharedVoiceBody"),
				Response:    define.JSONResponseType("AddSharedVoiceResponse"),
			},

			// professional voice clones
			{
				ID:          "CreatePvcVoice",
				Method:      define.MethodPost,
				Path:        "/v1/voices/pvc",
				Description: "Creates a professional voice clone",
				Request:     define.JSONBodyType("CreatePvcVoiceBody"),
				Response:    define.JSONResponseType("AddSharedVoiceResponse"),
			},
			{
				ID:          "UpdatePvcVoice",
				Method:      define.MethodPost,
				Path:        "/v1/voices/pvc/{voice_id}",
				Description: "Updates a PVC voice",
				Request:     define.JSONBodyType("CreatePvcVoiceBody"),
				Response:    define.JSONResponseType("StatusResponse"),
			},
			{
				ID:          "TrainPvcVoice",
				Method:      define.MethodPost,
				Path:        "/v1/voices/pvc/{voice_id}/train",
				Description: "Starts training a PVC voice",
				Request:     define.JSONBodyType("TrainPvcVoiceBody"),
				Response:    define.JSONResponseType("StatusResponse"),
			},

			// sound effects
			{
				ID:          "CreateSoundEffect",
				Method:      define.MethodPost,
				Path:        "/v1/sound-generation",
				Description: "Generates a sound effect from text",
				Request:     define.JSONBodyType("CreateSoundEffectBody"),
				Response:    define.BinaryResponse(),
			},

			// models
			{
				ID:          "ListSpeechModels",
				Method:      define.MethodGet,
				Path:        "/v1/models",
				Description: "Lists all available models",
				Response:    define.JSONResponseType("SpeechModelList"),
			},

			// single-use tokens
			{
				ID:          "CreateSingleUseToken",
				Method:      define.MethodPost,
				Path:        "/v1/single-use-token/{token_type}",
				Description: "Creates a single-use token for WebSocket auth",
				Response:    define.JSONResponseType("SingleUseTokenResponse"),
			},

			// history
			{
				ID:          "GetHistory",
				Method:      define.MethodGet,
				Path:        "/v1/history",
				Description: "Gets generated items history",
				Response:    define.JSONResponseType("GetHistoryResponse"),
			},
			{
				ID:          "GetHistoryItem",
				Method:      define.MethodGet,
				Path:        "/v1/history/{history_item_id}",
				Description: "Gets a specific history item",
				Response:    define.JSONResponseType("SpeechHistoryItemResponseModel"),
			},
			{
				ID:          "DeleteHistoryItem",
				Method:      define.MethodDelete,
				Path:        "/v1/history/{history_item_id}",
				Description: "Deletes a history item",
				Response:    define.JSONResponseType("StatusResponse"),
			},
			{
				ID:          "GetHistoryItemAudio",
				Method:      define.MethodGet,
				Path:        "/v1/history/{history_item_id}/audio",
				Description: "Gets audio for a history item",
				Response:    define.BinaryResponse(),
			},
			{
				ID:          "DownloadHistoryItems",
				Method:      define.MethodPost,
				Path:        "/v1/history/download",
				Description: "Downloads multiple history items as ZIP",
				Request:     define.JSONBodyType("DownloadHistoryBody"),
				Response:    define.BinaryResponse(),
			},

			// workspace
			{
				ID:          "GetUsageStats",
				Method:      define.MethodGet,
				Path:        "/v1/usage/character-stats",
				Description: "Gets usage statistics",
				Response:    define.JSONResponseType("UsageStatsResponse"),
			},
			{
				ID:          "GetUser",
				Method:      define.MethodGet,
				Path:        "/v1/user",
				Description: "Gets current user information",
				Response:    define.JSONResponseType("UserResponse"),
			},
			{
				ID:          "GetUserSubscription",
				Method:      define.MethodGet,
				Path:        "/v1/user/subscription",
				Description: "Gets user subscription information",
				Response:    define.JSONResponseType("SubscriptionModel"),
			},
			{
				ID:          "GetResource",
				Method:      define.MethodGet,
				Path:        "/v1/workspace/resources/{resource_id}",
				Description: "Gets resource information",
				Response:    define.JSONResponseType("ResourceResponse"),
			},
			{
				ID:          "ShareResource",
				Method:      define.MethodPost,
				Path:        "/v1/workspace/resources/{resource_id}/share",
				Description: "Shares a resource",
				Request:     define.JSONBodyType("ShareResourceBody"),
				Response:    define.JSONResponseType("StatusResponse"),
			},
			{
				ID:          "UnshareResource",
				Method:      define.MethodPost,
				Path:        "/v1/workspace/resources/{resource_id}/unshare",
				Description: "Removes sharing for a resource",
				Request:     define.JSONBodyType("UnshareResourceBody"),
				Response:    define.JSONResponseType("StatusResponse"),
			},
			{
				ID:          "CopyResourceToWorkspace",
				Method:      define.MethodPost,
				Path:        "/v1/workspace/resources/{resource_id}/copy-to-workspace",
				Description: "Copies a resource to another workspace",
				Request:     define.JSONBodyType("CopyResourceBody"),
				Response:    define.JSONResponseType("StatusResponse"),
			},

			// service accounts
			{
				ID:          "ListServiceAccounts",
				Method:      define.MethodGet,
				Path:        "/v1/service-accounts",
				Description: "Lists service accounts",
				Response:    define.JSONResponseType("ListServiceAccountsResponse"),
			},
			{
				ID:          "ListServiceAccountApiKeys",
				Method:      define.MethodGet,
				Path:        "/v1/service-accounts/{service_account_user_id}/api-keys",
				Description: "Lists API keys for a service account",
				Response:    define.JSONResponseType("ListApiKeysResponse"),
			},
			{
				ID:          "CreateApiKey",
				Method:      define.MethodPost,
				Path:        "/v1/service-accounts/{service_account_user_id}/api-keys",
				Description: "Creates an API key for a service account",
				Request:     define.JSONBodyType("CreateApiKeyBody"),
				Response:    define.JSONResponseType("CreateApiKeyResponse"),
			},
			{
				ID:          "UpdateApiKey",
				Method:      define.MethodPatch,
				Path:        "/v1/service-accounts/{service_account_user_id}/api-keys/{api_key_id}",
				Description: "Updates an API key",
				Request:     define.JSONBodyType("UpdateApiKeyBody"),
				Response:    define.JSONResponseType("StatusResponse"),
			},
			{
				ID:          "DeleteApiKey",
				Method:      define.MethodDelete,
				Path:        "/v1/service-accounts/{service_account_user_id}/api-keys/{api_key_id}",
				Description: "Deletes an API key",
				Response:    define.JSONResponseType("StatusResponse"),
			},

			// webhooks
			{
				ID:          "ListWebhooks",
				Method:      define.MethodGet,
				Path:        "/v1/workspace/webhooks",
				Description: "Lists webhooks",
				Response:    define.JSONResponseType("ListWebhooksResponse"),
			},
			{
				ID:          "CreateWebhook",
				Method:      define.MethodPost,
				Path:        "/v1/workspace/webhooks",
				Description: "Creates a webhook",
				Request:     define.JSONBodyType("CreateWebhookBody"),
				Response:    define.JSONResponseType("CreateWebhookResponse"),
			},
			{
				ID:          "UpdateWebhook",
				Method:      define.MethodPatch,
				Path:        "/v1/workspace/webhooks/{webhook_id}",
				Description: "Updates a webhook",
				Request:     define.JSONBodyType("UpdateWebhookBody"),
				Response:    define.JSONResponseType("StatusResponse"),
			},
			{
				ID:          "DeleteWebhook",
				Method:      define.MethodDelete,
				Path:        "/v1/workspace/webhooks/{webhook_id}",
				Description: "Deletes a webhook",
				Response:    define.JSONResponseType("StatusResponse"),
			},
		},
	}
}

// ElevenLabsTTS returns the ElevenLabs real-time text-to-speech WebSocket
// API definition.
func ElevenLabsTTS() *define.WebSocketAPI {
	return &define.WebSocketAPI{
		Name:              "ElevenLabsTTS",
		Description:       "ElevenLabs Text-to-Speech WebSocket API for real-time streaming",
		BaseURL:           "wss://api.elevenlabs.io",
		DocsURL:           "https://elevenlabs.io/docs/api-reference/websockets",
		Auth:              define.APIKeyAuth("xi-api-key"),
		CredentialEnvVars: elevenLabsCredentials(),
		Endpoints: []define.WebSocketEndpoint{
			{
				ID:          "TextToSpeech",
				Path:        "/v1/text-to-speech/{voice_id}/stream-input",
				Description: "Stream text and receive audio chunks in real-time",
				ConnectionParams: []define.ConnectionParam{
					{Name: "model_id", Type: define.ParamString, Description: "TTS model to use"},
					{Name: "language_code", Type: define.ParamString, Description: "Target language code"},
					{Name: "enable_logging", Type: define.ParamBoolean, Description: "Enable logging (default: true)"},
					{Name: "enable_ssml_parsing", Type: define.ParamBoolean, Description: "Parse SSML tags"},
					{Name: "output_format", Type: define.ParamString, Description: "Audio output format"},
					{Name: "inactivity_timeout", Type: define.ParamInteger, Description: "Timeout in seconds (default: 20)"},
					{Name: "sync_alignment", Type: define.ParamBoolean, Description: "Synchronize alignment data"},
					{Name: "auto_mode", Type: define.ParamBoolean, Description: "Auto mode for generation"},
					{Name: "apply_text_normalization", Type: define.ParamString, Description: "Text normalization: auto, on, off"},
					{Name: "seed", Type: define.ParamInteger, Description: "Reproducibility seed"},
				},
				Lifecycle: define.ConnectionLifecycle{
					Open: &define.MessageSchema{
						Name:        "BOS",
						Direction:   define.DirectionClient,
						Schema:      define.NewSchema("TtsInitMessage"),
						Description: "Begin-of-stream with voice settings",
					},
					Close: &define.MessageSchema{
						Name:        "EOS",
						Direction:   define.DirectionClient,
						Schema:      define.NewSchema("TtsCloseMessage"),
						Description: "End-of-stream signal",
					},
				},
				Messages: []define.MessageSchema{
					{
						Name:        "TextChunk",
						Direction:   define.DirectionClient,
						Schema:      define.NewSchema("TtsTextMessage"),
						Description: "Text to synthesize",
					},
					{
						Name:        "AudioChunk",
						Direction:   define.DirectionServer,
						Schema:      define.NewSchema("TtsAudioResponse"),
						Description: "Audio data with alignment",
					},
				},
			},
			{
				ID:          "MultiContextTextToSpeech",
				Path:        "/v1/text-to-speech/{voice_id}/multi-stream-input",
				Description: "Manage multiple audio streams over a single connection",
				ConnectionParams: []define.ConnectionParam{
					{Name: "model_id", Type: define.ParamString, Description: "TTS model to use"},
					{Name: "output_format", Type: define.ParamString, Description: "Audio output format"},
				},
				Lifecycle: define.ConnectionLifecycle{
					Open: &define.MessageSchema{
						Name:        "InitContext",
						Direction:   define.DirectionClient,
						Schema:      define.NewSchema("MultiContextInitMessage"),
						Description: "Initialize a context with settings",
					},
					Close: &define.MessageSchema{
						Name:        "CloseSocket",
						Direction:   define.DirectionClient,
						Schema:      define.NewSchema("MultiContextCloseSocketMessage"),
						Description: "Close the entire socket",
					},
				},
				Messages: []define.MessageSchema{
					{
						Name:        "TextChunk",
						Direction:   define.DirectionClient,
						Schema:      define.NewSchema("MultiContextTextMessage"),
						Description: "Text to synthesize for a context",
					},
					{
						Name:        "CloseContext",
						Direction:   define.DirectionClient,
						Schema:      define.NewSchema("MultiContextCloseMessage"),
						Description: "Close a specific context",
					},
					{
						Name:        "AudioChunk",
						Direction:   define.DirectionServer,
						Schema:      define.NewSchema("MultiContextAudioResponse"),
						Description: "Audio data for a context",
					},
				},
			},
		},
	}
}
