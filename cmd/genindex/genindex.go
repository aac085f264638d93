// genindex scans a directory for HTML snippet files and regenerates its
// index.html gallery page.
//
//	usage:
//	   genindex [DIR]
//
// DIR defaults to $SNIPPETS_DIR, then the current directory. Unreadable
// snippets are reported and skipped over with fallback metadata; only a
// directory that can't be listed at all is fatal.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/willf/snippets/gallery"
	"gitlab.com/efronlicht/enve"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger := setupLogger()
	defer logger.Sync()
	log.SetPrefix("genindex\t")

	dir := enve.StringOr("SNIPPETS_DIR", ".")
	switch len(os.Args) {
	case 1:
	case 2:
		dir = os.Args[1]
	default:
		log.Fatal("expected at most one command-line argument\nusage:\tgenindex [DIR]")
	}
	dir = must(filepath.Abs(dir))

	log.Printf("scanning %s for HTML snippets...", dir)
	snippets, err := gallery.Generate(dir)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("✓ Generated %s with %d snippet(s)", filepath.Join(dir, gallery.OutputFile), len(snippets))
}

// setupLogger installs a console zap logger as the global logger and routes
// the standard log package through it, so the gallery package's warnings and
// our own progress lines come out interleaved on stderr.
func setupLogger() *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(os.Stderr),
		zapcore.InfoLevel,
	))
	zap.ReplaceGlobals(logger)
	zap.RedirectStdLog(logger)
	return logger
}

func must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}
