package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"syscall"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/kelseyhightower/envconfig"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/lifecycle"
	"github.com/twitsprout/tools/zap"

	"famgallery/internal/backend"
	"famgallery/internal/http"
	"famgallery/internal/session"
	"famgallery/internal/upload"
)

var version string

type variables struct {
	Addr              string `required:"true" envconfig:"addr"`
	AppName           string `required:"true" envconfig:"app_name"`
	LogLevel          string `required:"false" envconfig:"log_level"`
	APIBaseURL        string `required:"true" envconfig:"api_base_url"`
	ShareBaseURL      string `required:"true" envconfig:"share_base_url"`
	AuthBaseURL       string `required:"true" envconfig:"auth_base_url"`
	AuthAPIKey        string `required:"true" envconfig:"auth_api_key"`
	OAuthClientID     string `required:"false" envconfig:"oauth_client_id"`
	OAuthClientSecret string `required:"false" envconfig:"oauth_client_secret"`
	OAuthAuthURL      string `required:"false" envconfig:"oauth_auth_url"`
	OAuthTokenURL     string `required:"false" envconfig:"oauth_token_url"`
	OAuthRedirectURL  string `required:"false" envconfig:"oauth_redirect_url"`
}

var v variables

func init() {
	if metadata.OnGCE() {
		port := os.Getenv("PORT")
		err := os.Setenv("ADDR", ":"+port)
		if err != nil {
			log.Fatal(err)
		}
	}

	envconfig.MustProcess("famgallery", &v)
	fmt.Println("Env variables :", v)
	if v.LogLevel == "" {
		v.LogLevel = "info"
	}
}

func main() {
	logger := zap.New("famgallery", version, os.Stdout)
	if err := logger.SetLevel(v.LogLevel); err != nil {
		logger.Error("failed to set log level", "error", err.Error())
	}

	sess := session.New(session.Config{
		BaseURL:           v.AuthBaseURL,
		APIKey:            v.AuthAPIKey,
		OAuthClientID:     v.OAuthClientID,
		OAuthClientSecret: v.OAuthClientSecret,
		OAuthAuthURL:      v.OAuthAuthURL,
		OAuthTokenURL:     v.OAuthTokenURL,
		OAuthRedirectURL:  v.OAuthRedirectURL,
	}, logger)

	api := backend.New(v.APIBaseURL, sess, logger)

	ctx := context.Background()

	lc, ctx := lifecycle.New(ctx, logger)
	lc.Start("famgallery root context", func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	h := http.Handler{
		AppName:      v.AppName,
		Version:      version,
		ShareBaseURL: v.ShareBaseURL,
		Logger:       logger,
		Session:      sess,
		MediaStore:   api,
		AlbumStore:   api,
		FolderStore:  api,
		ShareStore:   api,
		FamilyStore:  api,
		PublicStore:  api,
		Uploader:     upload.New(api, api, api, logger),
	}
	// Cached view state belongs to one account; drop it on every session
	// transition.
	sess.OnChange(func(signedIn bool) {
		h.ResetViews()
	})

	server := httputils.NewServer(v.Addr, h.Handler())
	lc.StartServer(server)
	lc.StartSignals(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	_ = lc.Wait(15 * time.Second)
}
