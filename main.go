package main

import (
	auth "Strut/internal/auth"
	column "Strut/internal/calc/column"
	compression "Strut/internal/calc/compression"
	curve "Strut/internal/calc/curve"
	loads "Strut/internal/calc/loads"
	autodesign "Strut/internal/calc/premium/autodesign"
	batch "Strut/internal/calc/premium/batch"
	importer "Strut/internal/calc/premium/importer"
	recommend "Strut/internal/calc/premium/recommend"
	report "Strut/internal/calc/report"
	section "Strut/internal/calc/section"
	history "Strut/internal/history"
	material "Strut/internal/material"
	repo "Strut/internal/repo"
	"context"
	"database/sql"

	"encoding/json"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") //у меня нет домена это тестовый сервер
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)

	// Load TOKEN_KEY from environment
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	historyH := &history.HistoryHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	api.HandleFunc("/materials", func(w http.ResponseWriter, r *http.Request) {
		type Grade struct {
			Grade string  `json:"grade"`
			Name  string  `json:"name"`
			E_Pa  float64 `json:"e_pa"`
			SyPa  float64 `json:"sy_pa"`
		}
		var grades []Grade
		for _, g := range material.Grades() {
			props, err := material.Lookup(g)
			if err != nil {
				continue
			}
			grades = append(grades, Grade{Grade: g, Name: props.Name, E_Pa: props.E, SyPa: props.Sy})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(grades)
	}).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/history", historyH.Save).Methods("POST")
	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history/{id:[0-9]+}", historyH.Get).Methods("GET")

	columnH := &column.Handler{}
	compressionH := &compression.Handler{}
	sectionH := &section.Handler{}
	loadsH := &loads.Handler{}
	curveH := &curve.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	autodesignH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tools/column/calc", columnH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/column/curve", curveH.Chart).Methods("POST")
	secureApi.HandleFunc("/tools/compression/calc", compressionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/section/calc", sectionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/loads/calc", loadsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools/batch/column", batchH.Column).Methods("POST")
	secureApi.HandleFunc("/tools/import/column", importerH.Column).Methods("POST")
	secureApi.HandleFunc("/tools/autodesign/column", autodesignH.Column).Methods("POST")
	secureApi.HandleFunc("/tools/recommend/section", recommendH.Section).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	HandleList(mux, db)
	handler := CORS(mux)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	cert := os.Getenv("TLS_CERT")
	key := os.Getenv("TLS_KEY")

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cert != "" && key != "" {
			err = server.ListenAndServeTLS(cert, key)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")
	fmt.Println("Закрытие активных соединений")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}
	log.Println("Сервер успешно остановлен")

	wg.Wait()
}
