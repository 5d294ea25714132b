package completion

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	openai "github.com/sashabaranov/go-openai"
)

const cognitiveServicesScope = "https://cognitiveservices.azure.com/.default"

// azureAD obtains an Entra ID bearer token for every call. The credential
// caches and refreshes tokens; every call shares one http.Client so
// connections are reused.
type azureAD struct {
	cred azcore.TokenCredential
	cfg  Config
	http *http.Client
}

func newAzure(cfg *Config) (Client, error) {
	if cfg.AuthType == AuthAzureAD {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("create azure credential: %w", err)
		}
		return NewAzureAD(cfg, cred, nil), nil
	}

	return newChat(azureConfig(cfg, cfg.Token), cfg), nil
}

// NewAzureAD returns an Azure OpenAI client that authenticates with bearer
// tokens from cred. A nil hc gets a fresh http.Client.
func NewAzureAD(cfg *Config, cred azcore.TokenCredential, hc *http.Client) Client {
	if hc == nil {
		hc = &http.Client{}
	}
	return &azureAD{cred: cred, cfg: *cfg, http: hc}
}

func (a *azureAD) Complete(ctx context.Context, system, user string) (string, error) {
	tok, err := a.cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{cognitiveServicesScope},
	})
	if err != nil {
		return "", fmt.Errorf("acquire azure token: %w", err)
	}

	oc := azureConfig(&a.cfg, tok.Token)
	oc.APIType = openai.APITypeAzureAD
	oc.HTTPClient = a.http

	return newChat(oc, &a.cfg).Complete(ctx, system, user)
}

func azureConfig(cfg *Config, token string) openai.ClientConfig {
	oc := openai.DefaultAzureConfig(token, cfg.BaseURL)
	oc.APIVersion = cfg.APIVersion
	deployment := cfg.Deployment
	oc.AzureModelMapperFunc = func(string) string {
		return deployment
	}
	return oc
}
