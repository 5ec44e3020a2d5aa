// Command predict runs the prediction pipeline on a patient JSON file and
// prints the full result, for offline evaluation without the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Gokulakrishnxn/Stellest-AI/internal/linear"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/predictor"
	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

func main() {
	modelPath := flag.String("model", "", "path to an exported linear model (optional)")
	jitter := flag.Bool("jitter", false, "add cosmetic noise to the per-model breakdown")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] patient.json\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read patient file")
	}

	var rec models.PatientRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		log.Fatal().Err(err).Msg("failed to parse patient file")
	}

	opts := []predictor.Option{predictor.WithDisplayJitter(*jitter)}
	if *modelPath != "" {
		model, err := linear.Load(*modelPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load linear model")
		}
		opts = append(opts, predictor.WithLinearModel(model))
	}

	result, err := predictor.New(opts...).Predict(context.Background(), rec)
	if err != nil {
		log.Fatal().Err(err).Msg("prediction failed")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode result")
	}
	fmt.Println(string(out))
}
