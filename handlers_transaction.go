package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *App) createTransactionHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	var body transactionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	tx, err := a.store.CreateTransaction(ctx, owner, body)
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (a *App) listTransactionsHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := a.store.ListTransactions(ctx, owner, queryFilter(c, true))
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *App) getTransactionHandler(c *gin.Context) {
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
	tx, err := a.store.GetTransaction(ctx, id, owner)
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (a *App) updateTransactionHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch transactionBody
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	tx, err := a.store.UpdateTransaction(ctx, id, owner, patch)
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (a *App) deleteTransactionHandler(c *gin.Context) {
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
	if err := a.store.DeleteTransaction(ctx, id, owner); err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}

func (a *App) deleteAllTransactionsHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	n, err := a.store.DeleteAllTransactions(ctx, owner)
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
