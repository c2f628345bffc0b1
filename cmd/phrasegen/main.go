package main

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bafoka-network/voice-assistant/internal/config"
	"github.com/bafoka-network/voice-assistant/internal/speech"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		count    int
		intent   string
		lang     string
		seed     int64
		out      string
		withBIO  bool
		audio    bool
		audioDir string
	)

	cmd := &cobra.Command{
		Use:   "phrasegen",
		Short: "Generate synthetic banking phrases for classifier evaluation",
		Long: `phrasegen writes JSONL samples ({text, intent, entities}) that mimic
transcribed voice commands: template phrases with random amounts,
currencies and beneficiary names, plus occasional hesitations and
politeness markers. With --audio each sample is also synthesized
through the configured TTS provider, one file per phrase.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := newGenerator(seed, lang)
			if err != nil {
				return err
			}

			samples, err := gen.samples(count, intent)
			if err != nil {
				return err
			}

			if withBIO {
				for i := range samples {
					samples[i].BIO = bioTags(samples[i].Text, samples[i].Entities)
				}
			}

			if audio {
				if err := synthesizeAll(cmd, samples, audioDir); err != nil {
					return err
				}
			}

			w := os.Stdout
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			enc := json.NewEncoder(w)
			for _, s := range samples {
				if err := enc.Encode(s); err != nil {
					return fmt.Errorf("encode sample: %w", err)
				}
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "generated %d samples\n", len(samples))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 100, "samples per intent")
	cmd.Flags().StringVar(&intent, "intent", "", "generate a single intent (default all)")
	cmd.Flags().StringVar(&lang, "lang", "fr", "phrase language (fr or en)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().StringVar(&out, "out", "-", "output file (- for stdout)")
	cmd.Flags().BoolVar(&withBIO, "bio", false, "add word-level BIO entity tags")
	cmd.Flags().BoolVar(&audio, "audio", false, "synthesize audio for each sample")
	cmd.Flags().StringVar(&audioDir, "audio-dir", "synthetic_audio", "directory for synthesized audio")

	return cmd
}

// synthesizeAll runs every sample through the configured TTS provider.
// Per-sample failures are reported and skipped, matching how a long
// generation run should behave.
func synthesizeAll(cmd *cobra.Command, samples []sample, dir string) error {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.TTSProvider == "none" {
		return fmt.Errorf("TTS_PROVIDER is none, nothing to synthesize with")
	}

	svc, err := speech.NewServiceFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init speech providers: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	done := 0
	for i := range samples {
		data, ext, err := svc.Synthesize(cmd.Context(), samples[i].Text)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "synthesis failed for %q: %v\n", samples[i].Text, err)
			continue
		}

		id := uuid.NewString()
		path := filepath.Join(dir, fmt.Sprintf("%s_%s%s", samples[i].Intent, id, ext))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		samples[i].AudioPath = path
		samples[i].AudioID = id

		done++
		if done%50 == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "synthesized %d/%d samples\n", done, len(samples))
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "synthesized %d audio files\n", done)
	return nil
}
