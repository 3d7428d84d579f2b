package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/schemerrors"
)

func orbitAPI() *define.API {
	return &define.API{
		Name:              "Orbit",
		Description:       "Widget tracking service.",
		BaseURL:           "https://api.orbit.test/v1",
		DocsURL:           "https://docs.orbit.test",
		Auth:              define.BearerAuth(),
		CredentialEnvVars: []string{"ORBIT_API_KEY", "ORBIT_KEY"},
		Endpoints: []define.Endpoint{
			{
				ID:       "createWidget",
				Method:   define.MethodPost,
				Path:     "/widgets",
				Request:  define.JSONBody(define.NewSchema("WidgetParams")),
				Response: define.JSONResponse(define.NewSchema("Widget")),
			},
			{
				ID:       "getWidget",
				Method:   define.MethodGet,
				Path:     "/widgets/{widget_id}",
				Response: define.JSONResponse(define.NewSchema("Widget")),
			},
			{
				ID:       "deleteWidget",
				Method:   define.MethodDelete,
				Path:     "/widgets/{widget_id}",
				Response: define.EmptyResponse(),
			},
		},
	}
}

func TestGenerateProducesExpectedFiles(t *testing.T) {
	result, err := GenerateWithOptions(WithDefinitions(orbitAPI()))
	require.NoError(t, err)
	require.True(t, result.Success)

	var names []string
	for _, f := range result.Files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"doc.go", "shared.go", "orbit.go", "README.md"}, names)
	assert.Equal(t, "schema", result.PackageName)
	assert.Equal(t, 1, result.GeneratedClients)
	assert.Equal(t, 3, result.GeneratedWrappers)
}

func TestGenerateClientSurface(t *testing.T) {
	result, err := GenerateWithOptions(WithDefinitions(orbitAPI()))
	require.NoError(t, err)

	module := result.GetFile("orbit.go")
	require.NotNil(t, module)
	src := string(module.Content)

	assert.Contains(t, src, `const OrbitBaseURL = "https://api.orbit.test/v1"`)
	assert.Contains(t, src, "type CreateWidgetRequest struct")
	assert.Contains(t, src, "type GetWidgetRequest struct")
	assert.Contains(t, src, "type DeleteWidgetRequest struct")
	assert.Contains(t, src, "type OrbitRequest interface")
	assert.Contains(t, src, "requestParts() (RequestParts, error)")
	assert.Contains(t, src, "type Orbit struct")
	assert.Contains(t, src, "func NewOrbit() (*Orbit, error)")
	assert.Contains(t, src, "func NewOrbitWithBaseURL(baseURL string) (*Orbit, error)")
	assert.Contains(t, src, "func NewOrbitWithClient(httpClient *http.Client) (*Orbit, error)")

	// path parameter handling
	assert.Contains(t, src, "WidgetId string")
	assert.Contains(t, src, `strings.ReplaceAll(path, "{widget_id}", url.PathEscape(r.WidgetId))`)

	// credential fallback chain in declaration order
	assert.Contains(t, src, `resolveEnv([]string{"ORBIT_API_KEY", "ORBIT_KEY"})`)
	assert.Contains(t, src, `c.authValue = "Bearer " + cred`)
}

func TestGenerateDispatchMatchesResponseKinds(t *testing.T) {
	def := orbitAPI()
	result, err := GenerateWithOptions(WithDefinitions(def))
	require.NoError(t, err)

	src := string(result.GetFile("orbit.go").Content)
	assert.Contains(t, src, "func DoOrbitJSON[T any](c *Orbit, req OrbitRequest)")
	assert.Contains(t, src, "func (c *Orbit) Do(req OrbitRequest) error")
	assert.NotContains(t, src, "DoText")
	assert.NotContains(t, src, "DoBytes")

	// empty responses get a convenience method, JSON responses do not
	assert.Contains(t, src, "func (c *Orbit) DeleteWidget(req *DeleteWidgetRequest) error")
	assert.NotContains(t, src, "func (c *Orbit) GetWidget(")
}

func TestGenerateTextAndBinaryDispatch(t *testing.T) {
	def := &define.API{
		Name:    "Speech",
		BaseURL: "https://api.speech.test",
		Auth:    define.NoAuth(),
		Endpoints: []define.Endpoint{
			{
				ID:       "synthesize",
				Method:   define.MethodPost,
				Path:     "/synthesize",
				Request:  define.TextBody("text/plain"),
				Response: define.BinaryResponse(),
			},
			{
				ID:       "transcript",
				Method:   define.MethodGet,
				Path:     "/transcripts/{id}",
				Response: define.TextResponse(),
			},
		},
	}
	result, err := GenerateWithOptions(WithDefinitions(def))
	require.NoError(t, err)

	src := string(result.GetFile("speech.go").Content)
	assert.Contains(t, src, "func (c *Speech) DoText(req SpeechRequest) (string, error)")
	assert.Contains(t, src, "func (c *Speech) DoBytes(req SpeechRequest) ([]byte, error)")
	assert.NotContains(t, src, "DoSpeechJSON")

	assert.Contains(t, src, "func (c *Speech) Synthesize(req *SynthesizeRequest) ([]byte, error)")
	assert.Contains(t, src, "func (c *Speech) Transcript(req *TranscriptRequest) (string, error)")
}

func TestGenerateFormDataWrapper(t *testing.T) {
	def := &define.API{
		Name:              "Files",
		BaseURL:           "https://api.files.test",
		Auth:              define.APIKeyAuth("X-Api-Key"),
		CredentialEnvVars: []string{"FILES_KEY"},
		Endpoints: []define.Endpoint{
			{
				ID:     "upload",
				Method: define.MethodPost,
				Path:   "/upload",
				Request: define.FormData(
					define.TextField("purpose"),
					define.FileField("document"),
					define.TextField("notes").Optional(),
				),
				Response: define.JSONResponseType("UploadResult"),
			},
		},
	}
	result, err := GenerateWithOptions(WithDefinitions(def))
	require.NoError(t, err)

	src := string(result.GetFile("files.go").Content)
	assert.Regexp(t, `Purpose\s+string`, src)
	assert.Regexp(t, `DocumentPath\s+string`, src)
	assert.Regexp(t, `Notes\s+string`, src)
	assert.Contains(t, src, `writeFilePart(w, "document", r.DocumentPath)`)
	assert.Contains(t, src, `if r.Notes != ""`)
	assert.Contains(t, src, "w.FormDataContentType()")
}

func TestGenerateBasicAuthClient(t *testing.T) {
	def := &define.API{
		Name:              "Vault",
		BaseURL:           "https://vault.test",
		Auth:              define.BasicAuth(),
		UsernameEnvVar:    "VAULT_USER",
		CredentialEnvVars: []string{"VAULT_PASSWORD"},
		Endpoints: []define.Endpoint{
			{
				ID:       "status",
				Method:   define.MethodGet,
				Path:     "/status",
				Response: define.JSONResponseType("Status"),
			},
		},
	}
	result, err := GenerateWithOptions(WithDefinitions(def))
	require.NoError(t, err)

	src := string(result.GetFile("vault.go").Content)
	assert.Contains(t, src, `os.Getenv("VAULT_USER")`)
	assert.Contains(t, src, "httpReq.SetBasicAuth(c.username, c.password)")
	assert.Contains(t, src, `return "", "", false`)
}

func TestGenerateModuleSharing(t *testing.T) {
	a := orbitAPI()
	a.ModulePath = "combined"
	b := &define.API{
		Name:       "Relay",
		BaseURL:    "https://relay.test",
		Auth:       define.NoAuth(),
		ModulePath: "combined",
		Endpoints: []define.Endpoint{
			{
				ID:       "ping",
				Method:   define.MethodGet,
				Path:     "/ping",
				Response: define.EmptyResponse(),
			},
		},
	}
	result, err := GenerateWithOptions(WithDefinitions(a, b))
	require.NoError(t, err)
	require.True(t, result.Success)

	module := result.GetFile("combined.go")
	require.NotNil(t, module)
	src := string(module.Content)
	assert.Contains(t, src, "type Orbit struct")
	assert.Contains(t, src, "type Relay struct")
	assert.Nil(t, result.GetFile("orbit.go"))
	assert.Nil(t, result.GetFile("relay.go"))
}

func TestGenerateImplicitModuleSharingFails(t *testing.T) {
	a := orbitAPI()
	b := orbitAPI()
	b.Name = "orbit"
	b.Endpoints = b.Endpoints[:1]

	result, err := GenerateWithOptions(WithDefinitions(a, b))
	require.Error(t, err)
	assert.ErrorIs(t, err, schemerrors.ErrValidation)
	assert.False(t, result.Success)
	assert.Empty(t, result.Files)
}

func TestGenerateNamingCollisionFailsBeforeSynthesis(t *testing.T) {
	def := orbitAPI()
	def.Endpoints[0].Request = define.JSONBody(define.NewSchema("CreateWidgetRequest"))

	result, err := GenerateWithOptions(WithDefinitions(def))
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Empty(t, result.Files)

	found := false
	for _, issue := range result.Issues {
		if issue.Suggestion != "" {
			found = true
			assert.Contains(t, issue.Suggestion, "Body")
		}
	}
	assert.True(t, found, "collision issue should carry a rename suggestion")
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := GenerateWithOptions(WithDefinitions(orbitAPI()))
	require.NoError(t, err)
	second, err := GenerateWithOptions(WithDefinitions(orbitAPI()))
	require.NoError(t, err)

	require.Equal(t, len(first.Files), len(second.Files))
	for i := range first.Files {
		assert.Equal(t, first.Files[i].Name, second.Files[i].Name)
		assert.Equal(t, first.Files[i].Content, second.Files[i].Content)
	}
}

func TestGenerateStrictModeFailsOnWarnings(t *testing.T) {
	def := orbitAPI()
	def.DocsURL = ""

	result, err := GenerateWithOptions(WithDefinitions(def), WithStrictMode(true))
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.HasWarnings())
}

func TestGeneratePackageNameOption(t *testing.T) {
	result, err := GenerateWithOptions(
		WithDefinitions(orbitAPI()),
		WithPackageName("clients"),
	)
	require.NoError(t, err)
	assert.Equal(t, "clients", result.PackageName)
	assert.Contains(t, string(result.GetFile("shared.go").Content), "package clients")
	assert.Contains(t, string(result.GetFile("orbit.go").Content), "package clients")
}

func TestGenerateWithoutReadmeOrDoc(t *testing.T) {
	result, err := GenerateWithOptions(
		WithDefinitions(orbitAPI()),
		WithReadme(false),
		WithDoc(false),
	)
	require.NoError(t, err)
	assert.Nil(t, result.GetFile("README.md"))
	assert.Nil(t, result.GetFile("doc.go"))
	assert.NotNil(t, result.GetFile("shared.go"))
}

func TestGenerateReadmeManifest(t *testing.T) {
	result, err := GenerateWithOptions(
		WithDefinitions(orbitAPI()),
		WithOutputDir("clients/orbit"),
		WithCommand("apigen generate -api orbit -o clients/orbit"),
	)
	require.NoError(t, err)

	readme := string(result.GetFile("README.md").Content)
	assert.Contains(t, readme, "| Orbit | https://api.orbit.test/v1 | bearer | 3 |")
	assert.Contains(t, readme, "`orbit.go`")
	assert.Contains(t, readme, "`ORBIT_API_KEY`, `ORBIT_KEY`")
	assert.Contains(t, readme, "apigen generate -api orbit -o clients/orbit")
	assert.Contains(t, readme, "clients/orbit")
}

func TestGenerateNoDefinitions(t *testing.T) {
	_, err := GenerateWithOptions()
	require.Error(t, err)
}

func TestGeneratedSourceCarriesHeader(t *testing.T) {
	result, err := GenerateWithOptions(WithDefinitions(orbitAPI()))
	require.NoError(t, err)
	for _, f := range result.Files {
		if f.Name == "README.md" {
			continue
		}
		assert.Contains(t, string(f.Content), "DO NOT EDIT", f.Name)
	}
}

func TestGenerateAllIsolatesFailures(t *testing.T) {
	good := orbitAPI()
	bad := orbitAPI()
	bad.Name = "Broken"
	bad.BaseURL = ""

	g := New()
	results, err := g.GenerateAll(good, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, schemerrors.ErrValidation)
	require.Len(t, results, 2)

	require.NotNil(t, results[0])
	assert.True(t, results[0].Success)
	assert.NotNil(t, results[0].GetFile("orbit.go"))

	require.NotNil(t, results[1])
	assert.False(t, results[1].Success)
	assert.Empty(t, results[1].Files)
}

func TestGenerateAllNoFailures(t *testing.T) {
	g := New()
	results, err := g.GenerateAll(orbitAPI())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
}

func TestGenerateRejectsWrapperUnionCollision(t *testing.T) {
	def := orbitAPI()
	def.Name = "Echo"
	def.Endpoints = append(def.Endpoints, define.Endpoint{
		ID:       "Echo",
		Method:   define.MethodPost,
		Path:     "/echo",
		Request:  define.JSONBodyType("EchoBody"),
		Response: define.JSONResponseType("EchoResult"),
	})

	result, err := GenerateWithOptions(WithDefinitions(def))
	require.Error(t, err)
	assert.ErrorIs(t, err, schemerrors.ErrValidation)
	assert.False(t, result.Success)
	assert.Empty(t, result.Files)
}
