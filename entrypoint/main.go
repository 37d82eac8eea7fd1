package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"lexema.com/postag/api"
	"lexema.com/postag/console"
	"lexema.com/postag/corpus"
	"lexema.com/postag/hmm"
	"lexema.com/postag/logger"
	"lexema.com/postag/metrics"
	"lexema.com/postag/pipeline"
	"lexema.com/postag/types"
	"lexema.com/postag/utils"
	"lexema.com/postag/worker"
)

type Config struct {
	ConfigPath    string `envconfig:"POSTAG_CONFIG_PATH" required:"true"`
	Profile       string `envconfig:"POSTAG_PROFILE"`
	RestAPIActive bool   `envconfig:"POSTAG_REST_API_ACTIVE" default:"false"`
	RestAPIPort   string `envconfig:"POSTAG_REST_API_PORT" default:"10000"`
}

const modelLoadMaxRetries = 5

func main() {
	logger.SetupLogging()
	ptLogger := logger.NewLogger("Main")
	fatalErrLogger := ptLogger.Fatal().Caller()
	consoleMode := flag.Bool("console", false, "read sentences from stdin and print tags")
	tagFile := flag.String("tag-file", "", "tag the token lines in this file and exit")
	outFile := flag.String("out-file", "", "where to write tag lines for -tag-file")
	evalFile := flag.String("eval-file", "", "reference tag lines to score -tag-file output against")
	flag.Parse()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	// Load model, retrying on transient failures (corpus on slow mounts etc).
	modelChannel := make(chan *hmm.Model)
	go func() {
		for retry := 0; retry < modelLoadMaxRetries; retry++ {
			cfgs, err := types.LoadConfigurations(config.ConfigPath)
			if err != nil {
				ptLogger.Err(err).Msg("Failed to load configurations. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			ptLogger.Info().Msgf("Loaded %d configurations", len(cfgs))
			cfg, err := selectProfile(cfgs, config.Profile)
			if err != nil {
				fatalErrLogger.Err(err).Msg("Could not select profile")
				os.Exit(1)
			}
			model, err := pipeline.LoadModel(cfg)
			if err != nil {
				ptLogger.Err(err).Msg("Failed to prepare model. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			utils.GlobalStringStore().Lock()
			ptLogger.Info().Msg("Model loaded")
			modelChannel <- model
			return
		}
		fatalErrLogger.Msg("Could not prepare model after 5 retries, exiting")
		os.Exit(1)
	}()

	// block until the model is ready
	model := <-modelChannel

	if *consoleMode {
		if err := console.Run(model, os.Stdin, os.Stdout); err != nil {
			fatalErrLogger.Err(err).Msg("Console session failed")
			os.Exit(1)
		}
		return
	}

	if len(*tagFile) > 0 {
		if err := tagTokenFile(model, *tagFile, *outFile, *evalFile); err != nil {
			fatalErrLogger.Err(err).Msg("File tagging failed")
			os.Exit(1)
		}
		return
	}

	ppln := pipeline.NewPipeline(model)

	if config.RestAPIActive {
		go func() {
			ptLogger.Info().Msg("Starting API service")
			apiRequest := &api.Request{
				Pipeline: ppln,
			}
			http.HandleFunc("/", apiRequest.ProcessData)
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			ptLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, nil)
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}()
	}

	ptLogger.Info().Msg("Start tagging worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			ptLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			ptLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}

func selectProfile(cfgs []types.Configuration, name string) (types.Configuration, error) {
	if len(cfgs) == 0 {
		return types.Configuration{}, fmt.Errorf("no configurations found")
	}
	if len(name) == 0 {
		return cfgs[0], nil
	}
	for _, cfg := range cfgs {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return types.Configuration{}, fmt.Errorf("no configuration named %q", name)
}

func tagTokenFile(model *hmm.Model, wordPath, outPath, refPath string) error {
	wordLines, err := corpus.ReadTokenLines(wordPath)
	if err != nil {
		return err
	}
	predicted := make([][]string, len(wordLines))
	for i, words := range wordLines {
		tags, err := hmm.Decode(model, words)
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		predicted[i] = tags
	}
	if len(outPath) > 0 {
		if err := corpus.WriteTagLines(outPath, predicted); err != nil {
			return err
		}
	}
	if len(refPath) > 0 {
		reference, err := corpus.ReadTokenLines(refPath)
		if err != nil {
			return err
		}
		report, err := metrics.Evaluate(reference, predicted)
		if err != nil {
			return err
		}
		fmt.Print(report.Render())
	}
	return nil
}
