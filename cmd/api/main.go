package main

import (
	"net/http"
	"os"

	"fincompare/pkg/api/compare"
	"fincompare/pkg/core/calibration"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Calibration registry, optionally extended from override files.
	registry := calibration.NewRegistry()
	if path := os.Getenv("CALIBRATION_FILE"); path != "" {
		if err := registry.LoadProfileOverrides(path); err != nil {
			logger.WithError(err).Fatal("failed to load calibration overrides")
		}
		logger.WithField("file", path).Info("loaded calibration overrides")
	}
	if path := os.Getenv("SCENARIO_FILE"); path != "" {
		if err := registry.LoadScenarioOverrides(path); err != nil {
			logger.WithError(err).Fatal("failed to load scenario overrides")
		}
		logger.WithField("file", path).Info("loaded scenario overrides")
	}

	handler := compare.NewHandler(registry, logger)

	r := mux.NewRouter()
	r.HandleFunc("/api/calibrations", handler.HandleCalibrations).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/household", handler.HandleHousehold).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/sme", handler.HandleSME).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/national", handler.HandleNational).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/wealth", handler.HandleWealth).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/housing-support", handler.HandleHousingSupport).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/bank", handler.HandleBank).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/compare", handler.HandleFull).Methods(http.MethodPost, http.MethodOptions)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.WithField("port", port).Info("fincompare API listening")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
