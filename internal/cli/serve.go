package cli

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bayrell/baylang-cli/internal/branding"
	"github.com/bayrell/baylang-cli/internal/provider"
	"github.com/spf13/cobra"
)

var (
	serveRoot string
	serveAddr string
)

func init() {
	serveCmd.Flags().StringVar(&serveRoot, "root", ".", "Project root directory")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the project's public directory for local development",
	Long: `Serve public/ and an index page whose footer loads the vendored Vue
runtime, the runtime package script and the compiled application bundle.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := provider.New(serveRoot)
		if !p.Ready() {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: Vue runtime not vendored yet (run 'baylang init')\n")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           newServeHandler(p),
			ReadHeaderTimeout: 10 * time.Second,
		}
		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()
		fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s\n", p.PublicDir(), serveAddr)

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serving: %w", err)
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// newServeHandler boots p and routes the index page and public assets.
func newServeHandler(p *provider.Provider) http.Handler {
	p.Boot()
	mux := http.NewServeMux()
	mux.Handle("GET /assets/", p.AssetHandler())
	mux.Handle("GET /{$}", p.Route("index", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		footer, err := p.RenderFooter(provider.FromRequest(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head><title>%s</title></head>\n<body>\n<div id=\"app\"></div>\n%s</body>\n</html>\n",
			html.EscapeString(branding.DisplayName()), footer)
	})))
	return p.Middleware(mux)
}
