// Command predict evaluates one match state against a model artifact
// without starting the server. Useful for checking a new artifact before
// deploying it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cricpredict/winprob-api/internal/config"
	"github.com/cricpredict/winprob-api/internal/logic"
	"github.com/cricpredict/winprob-api/internal/models"
	"github.com/cricpredict/winprob-api/internal/pipeline"
)

func main() {
	modelPath := flag.String("model", config.DefaultModelPath, "path to the model artifact")
	batting := flag.String("batting", "", "batting team")
	bowling := flag.String("bowling", "", "bowling team")
	city := flag.String("city", "", "venue city")
	runs := flag.Float64("runs", -1, "runs left")
	balls := flag.Float64("balls", -1, "balls left")
	wickets := flag.Float64("wickets", -1, "wickets remaining")
	target := flag.Float64("target", -1, "total target")
	verbose := flag.Bool("v", false, "log derived features")
	flag.Parse()

	state := models.MatchState{
		BattingTeam:      nonEmpty(*batting),
		BowlingTeam:      nonEmpty(*bowling),
		City:             nonEmpty(*city),
		RunsLeft:         nonNegative(*runs),
		BallsLeft:        nonNegative(*balls),
		WicketsRemaining: nonNegative(*wickets),
		TotalRunX:        nonNegative(*target),
	}
	match, err := state.Resolve(validator.New())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	log := zap.NewNop()
	if *verbose {
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	model, err := pipeline.Load(config.ResolveModelPath(*modelPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load model: %v\n", err)
		os.Exit(1)
	}

	result, err := logic.NewPredictionService(model, log.Sugar()).Predict(context.Background(), match)
	if err != nil {
		fmt.Fprintf(os.Stderr, "predict: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "write result: %v\n", err)
		os.Exit(1)
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNegative(f float64) *float64 {
	if f < 0 {
		return nil
	}
	return &f
}
