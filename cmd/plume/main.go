package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rlevack/plume"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		runServe()
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: plume new <slug or title>")
			os.Exit(1)
		}
		if err := runNew(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("plume %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServe() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("plume: loading .env: %v", err)
	}

	cfg := plume.SiteConfig{
		Title:                 plume.EnvOr("SITE_TITLE", "Blog"),
		URL:                   plume.EnvOr("SITE_URL", "http://localhost:3000"),
		Description:           os.Getenv("SITE_DESCRIPTION"),
		Author:                os.Getenv("SITE_AUTHOR"),
		AuthorLink:            os.Getenv("SITE_AUTHOR_LINK"),
		OpenGraphTitle:        os.Getenv("SITE_OG_TITLE"),
		Addr:                  plume.EnvOr("ADDR", ":3000"),
		PostsDir:              plume.EnvOr("POSTS_DIR", "posts"),
		SkipBrokenPosts:       os.Getenv("SKIP_BROKEN_POSTS") == "true",
		AnalyticsEnabled:      os.Getenv("ANALYTICS_ENABLED") == "true",
		AnalyticsDatabasePath: plume.EnvOr("ANALYTICS_DB_PATH", "data/analytics.db"),
	}

	app := plume.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func printUsage() {
	fmt.Println(`plume - a personal blog and feed engine

Usage:
  plume <command> [arguments]

Commands:
  serve         Run the site
  new <slug>    Scaffold posts/<slug>/index.md with a front-matter skeleton
  version       Print the plume version
  help          Show this help message

Configuration is read from the environment (and .env if present):
  SITE_TITLE, SITE_URL, SITE_DESCRIPTION, SITE_AUTHOR, SITE_AUTHOR_LINK,
  SITE_OG_TITLE, ADDR, POSTS_DIR, SKIP_BROKEN_POSTS, ANALYTICS_ENABLED,
  ANALYTICS_DB_PATH`)
}
