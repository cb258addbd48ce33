package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"inkwash/internal/infra"
	"inkwash/internal/providers/genai"
	"inkwash/internal/providers/image"
	"inkwash/internal/providers/vision"
	"inkwash/internal/storage"
	"inkwash/internal/stylize"
)

func main() {
	var (
		promptFlag string
		imageFlag  string
		styleFlag  string
		aspectFlag string
		outFlag    string
	)
	flag.StringVar(&promptFlag, "prompt", "", "scene to render")
	flag.StringVar(&imageFlag, "image", "", "path to a photo to reimagine instead of a prompt")
	flag.StringVar(&styleFlag, "style", "", "style id (defaults to the configured style)")
	flag.StringVar(&aspectFlag, "aspect", "", "aspect ratio such as 1:1 or 16:9")
	flag.StringVar(&outFlag, "out", "", "output file (defaults to a derived name; existing files are never overwritten)")
	flag.Parse()

	_ = godotenv.Load()

	scene := strings.TrimSpace(promptFlag)
	imagePath := strings.TrimSpace(imageFlag)
	if scene == "" && imagePath == "" {
		exitWithError(errors.New("either -prompt or -image must be provided"))
	}
	if scene != "" && imagePath != "" {
		exitWithError(errors.New("-prompt and -image are mutually exclusive"))
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		exitWithError(err)
	}
	logger := infra.NewLogger("cli").With().Str("cmd", "render").Logger()

	styleID := styleFlag
	if strings.TrimSpace(styleID) == "" {
		styleID = cfg.StyleDefault
	}
	style, ok := stylize.Lookup(styleID)
	if !ok {
		exitWithError(fmt.Errorf("unsupported style %q", styleID))
	}

	aspect := strings.TrimSpace(aspectFlag)
	if aspect == "" {
		aspect = cfg.AspectRatio
	}

	client, err := genai.NewClient(genai.Options{
		APIKey:      cfg.GeminiAPIKey,
		BaseURL:     cfg.GeminiBaseURL,
		ImageModel:  cfg.GeminiImageModel,
		VisionModel: cfg.GeminiVisionModel,
		HTTPClient:  &http.Client{Timeout: cfg.GeminiTimeout},
		Logger:      &logger,
	})
	if err != nil {
		exitWithError(err)
	}

	seed := scene
	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			exitWithError(fmt.Errorf("read image: %w", err))
		}
		describeCtx, cancel := context.WithTimeout(context.Background(), cfg.GeminiTimeout)
		describer := vision.NewGeminiDescriber(client)
		description, err := describer.Describe(describeCtx, vision.DescribeRequest{
			Data:        data,
			MIME:        http.DetectContentType(data),
			Instruction: stylize.DescribeInstruction,
		})
		cancel()
		if err != nil {
			exitWithError(fmt.Errorf("describe image: %w", err))
		}
		fmt.Printf("description: %s\n", description)
		scene = description
		base := filepath.Base(imagePath)
		seed = strings.TrimSuffix(base, filepath.Ext(base))
	}

	renderCtx, cancel := context.WithTimeout(context.Background(), cfg.GeminiTimeout)
	defer cancel()

	generator := image.NewGeminiGenerator(client)
	asset, err := generator.Generate(renderCtx, image.RenderRequest{
		Prompt:      stylize.Prompt(style, scene),
		AspectRatio: aspect,
		OutputMIME:  cfg.OutputMIME,
	})
	if err != nil {
		exitWithError(fmt.Errorf("generate image: %w", err))
	}

	name := strings.TrimSpace(outFlag)
	if name == "" {
		name = stylize.Filename(seed, asset.MIME)
	}
	store, err := storage.NewDir(filepath.Dir(name))
	if err != nil {
		exitWithError(err)
	}
	path, err := store.Save(filepath.Base(name), asset.Data)
	if err != nil {
		exitWithError(err)
	}
	fmt.Printf("wrote %s (%d bytes, %s, style %s)\n", path, len(asset.Data), asset.MIME, style.ID)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
