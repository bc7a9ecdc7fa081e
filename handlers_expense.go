package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *App) createExpenseHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	var body expenseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	exp, err := a.store.CreateExpense(ctx, owner, body)
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func (a *App) listExpensesHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	// The expense filter has no source parameter.
	items, err := a.store.ListExpenses(ctx, owner, queryFilter(c, false))
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *App) updateExpenseHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch expenseBody
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	exp, err := a.store.UpdateExpense(ctx, id, owner, patch)
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (a *App) deleteExpenseHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	if err := a.store.DeleteExpense(ctx, id, owner); err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}
