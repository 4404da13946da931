package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/studium/internal/config"
	"github.com/abhisek/studium/internal/gateway"
	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/logger"
	"github.com/abhisek/studium/internal/progress"
	"github.com/abhisek/studium/internal/server"
	"github.com/abhisek/studium/internal/sessions"
	"github.com/abhisek/studium/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the learning platform HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides STUDIUM_ADDR env var)")
}

// runServe opens the store, builds the services, and serves the API
// until interrupted.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cfg.Mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aiLog := st.AIRequestRepo()
	providers, err := llm.NewProviders(ctx, cfg.LLM, aiLog)
	if err != nil {
		return fmt.Errorf("init AI providers: %w", err)
	}

	ai := gateway.NewService(*providers, domainRegistry(), gateway.NewTemplateStore(cfg.TemplateDir), gateway.DefaultConfig(), log)

	repos := server.Repos{
		Courses:     st.CourseRepo(),
		Subjects:    st.SubjectRepo(),
		Chapters:    st.ChapterRepo(),
		Enrollments: st.EnrollmentRepo(),
		Progress:    st.ProgressRepo(),
		Quizzes:     st.QuizRepo(),
		Bookmarks:   st.BookmarkRepo(),
		AIRequests:  aiLog,
	}

	learn := progress.NewService(progress.Stores{
		Courses:     repos.Courses,
		Subjects:    repos.Subjects,
		Chapters:    repos.Chapters,
		Enrollments: repos.Enrollments,
		Progress:    repos.Progress,
		Quizzes:     repos.Quizzes,
	}, log)
	track := sessions.NewService(st.SessionRepo(), log)

	srv := server.New(cfg, repos, ai, learn, track, log)
	return srv.Run(ctx)
}
