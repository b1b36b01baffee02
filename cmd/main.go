package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"go_tutor/internal/bootstrap"
	"go_tutor/internal/domain/game"
	repo "go_tutor/internal/repository"
	gameuc "go_tutor/internal/usecase/game"
)

func main() {
	size := flag.Int("size", 0, "board size (9, 13 or 19, default from config)")
	difficulty := flag.String("difficulty", "", "ai difficulty: easy, medium or hard")
	aiBlack := flag.Bool("ai-black", false, "let the AI play Black and move first")
	cfgPath := flag.String("config", ".env", "path to the config file")
	flag.Parse()

	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		logger.Errorw("failed to setup configuration", "err", err)
		return
	}

	if *size == 0 {
		*size = cfg.DefaultBoardSize
	}
	aiColor := game.White
	if *aiBlack {
		aiColor = game.Black
	}

	ctx := context.Background()
	store := repo.NewGameRepository(logger)
	uc := gameuc.NewGameUseCase(store, *cfg, logger)

	info, err := uc.CreateGame(ctx, *size, aiColor, *difficulty)
	if err != nil {
		logger.Errorw("failed to create game", "err", err)
		return
	}
	fmt.Printf("New game %s: %dx%d, you play %s, AI difficulty %s\n",
		info.PublicCode, info.BoardSize, info.BoardSize, aiColor.Opponent(), info.Difficulty)
	fmt.Println("Enter moves as \"x y\" (0-based), or: pass, analyze, log, sgf, quit")

	if aiColor == game.Black {
		aiTurn(ctx, uc, info.GameKey)
	}

	scanner := bufio.NewScanner(os.Stdin)
	if state, err := uc.State(ctx, info.GameKey); err == nil {
		printBoard(state.Board)
	}

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "quit", "exit":
			return
		case "analyze":
			report, err := uc.Analyze(ctx, info.GameKey)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			printAnalysis(report)
			continue
		case "log":
			entries, err := uc.MoveLog(ctx, info.GameKey)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for entry := range entries {
				fmt.Printf("%3d. %-5s %-4s captured %d\n", entry.Number, entry.Player, entry.Action, entry.Captured)
			}
			continue
		case "sgf":
			text, err := uc.SGF(ctx, info.GameKey)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(text)
			continue
		case "pass":
			resp, err := uc.Pass(ctx, info.GameKey)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if finished(resp) {
				return
			}
		default:
			var x, y int
			if _, err := fmt.Sscanf(line, "%d %d", &x, &y); err != nil {
				fmt.Println("unrecognized input")
				continue
			}
			resp, err := uc.PlayerMove(ctx, info.GameKey, x, y)
			if err != nil {
				fmt.Println("illegal move:", err)
				continue
			}
			if finished(resp) {
				return
			}
		}

		if !aiTurn(ctx, uc, info.GameKey) {
			return
		}
	}
}

func aiTurn(ctx context.Context, uc *gameuc.GameUseCase, key string) bool {
	resp, err := uc.AIMove(ctx, key)
	if err != nil {
		fmt.Println("ai error:", err)
		return false
	}
	fmt.Println("AI:", resp.Explanation)
	printBoard(resp.Board)
	return !finished(&resp.StateResponse)
}

func finished(resp *game.StateResponse) bool {
	if !resp.GameOver {
		return false
	}
	fmt.Printf("Game over. Black %.1f - White %.1f, winner: %s\n",
		resp.Score.Black, resp.Score.White, resp.Winner)
	return true
}

func printBoard(board [][]game.Color) {
	fmt.Print("   ")
	for x := range board {
		fmt.Printf("%2d", x)
	}
	fmt.Println()
	for y, row := range board {
		fmt.Printf("%2d ", y)
		for _, cell := range row {
			switch cell {
			case game.Black:
				fmt.Printf("%2s", "X")
			case game.White:
				fmt.Printf("%2s", "O")
			default:
				fmt.Printf("%2s", ".")
			}
		}
		fmt.Println()
	}
}

func printAnalysis(report *game.AnalysisReport) {
	fmt.Printf("Phase: %s (move %d), to play: %s\n", report.Phase, report.MoveCount, report.CurrentPlayer)
	fmt.Printf("Black: %d stones in %d groups, %d captured\n",
		report.BlackStrength.Stones, report.BlackStrength.Groups, report.BlackStrength.Captured)
	fmt.Printf("White: %d stones in %d groups, %d captured\n",
		report.WhiteStrength.Stones, report.WhiteStrength.Groups, report.WhiteStrength.Captured)
	fmt.Printf("Territory: black %d, white %d, neutral %d\n",
		report.Territory.Black, report.Territory.White, report.Territory.Neutral)
	fmt.Printf("Influence: black %.1f, white %.1f\n", report.Influence.Black, report.Influence.White)
	for _, rec := range report.Recommendations {
		fmt.Println(" -", rec)
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
