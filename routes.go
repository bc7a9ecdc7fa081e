package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// routeBinding is one declarative entry of the route table. The table is
// what gets registered on the engine and what the diagnostic endpoints
// report, so the two can never drift apart.
type routeBinding struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Auth    bool   `json:"auth"`
	handler gin.HandlerFunc
}

func (a *App) routeTable() []routeBinding {
	return []routeBinding{
		{http.MethodPost, "/api/v1/auth/register", false, a.registerHandler},
		{http.MethodPost, "/api/v1/auth/login", false, a.loginHandler},

		{http.MethodPost, "/api/v1/incomes", true, a.createIncomeHandler},
		{http.MethodGet, "/api/v1/incomes", true, a.listIncomesHandler},
		{http.MethodPut, "/api/v1/incomes/:id", true, a.updateIncomeHandler},
		{http.MethodDelete, "/api/v1/incomes/:id", true, a.deleteIncomeHandler},

		{http.MethodPost, "/api/v1/expenses", true, a.createExpenseHandler},
		{http.MethodGet, "/api/v1/expenses", true, a.listExpensesHandler},
		{http.MethodPut, "/api/v1/expenses/:id", true, a.updateExpenseHandler},
		{http.MethodDelete, "/api/v1/expenses/:id", true, a.deleteExpenseHandler},

		{http.MethodPost, "/api/v1/transactions", true, a.createTransactionHandler},
		{http.MethodGet, "/api/v1/transactions", true, a.listTransactionsHandler},
		{http.MethodGet, "/api/v1/transactions/:id", true, a.getTransactionHandler},
		{http.MethodPut, "/api/v1/transactions/:id", true, a.updateTransactionHandler},
		{http.MethodDelete, "/api/v1/transactions", true, a.deleteAllTransactionsHandler},
		{http.MethodDelete, "/api/v1/transactions/:id", true, a.deleteTransactionHandler},

		{http.MethodGet, "/api/v1/health", false, a.healthHandler},
	}
}

// registerRoutes installs the resource routes behind the auth gate and
// keeps the table for the diagnostic endpoints.
func (a *App) registerRoutes() {
	a.routes = a.routeTable()
	gate := authRequired(a.cfg.JWTSecret)
	for _, rb := range a.routes {
		if rb.Auth {
			a.engine.Handle(rb.Method, rb.Path, gate, rb.handler)
		} else {
			a.engine.Handle(rb.Method, rb.Path, rb.handler)
		}
	}
	// Route inspector is a non-production aid.
	if gin.Mode() != gin.ReleaseMode {
		a.engine.GET("/__routes", a.routesHandler)
	}
}

func (a *App) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "fintrack API is running"})
}

// routesHandler reports the route table itself rather than inspecting
// framework internals.
func (a *App) routesHandler(c *gin.Context) {
	routes := make([]string, 0, len(a.routes))
	for _, rb := range a.routes {
		routes = append(routes, fmt.Sprintf("%s %s", rb.Method, rb.Path))
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// registerDocs serves a machine-readable API summary generated from the
// route table.
func (a *App) registerDocs() {
	a.engine.GET("/api-docs", func(c *gin.Context) {
		type entry struct {
			Method string `json:"method"`
			Path   string `json:"path"`
			Auth   bool   `json:"auth"`
		}
		entries := make([]entry, 0, len(a.routes))
		for _, rb := range a.routes {
			entries = append(entries, entry{rb.Method, rb.Path, rb.Auth})
		}
		c.JSON(http.StatusOK, gin.H{
			"title":   "fintrack API",
			"version": "1.0.0",
			"routes":  entries,
		})
	})
}
