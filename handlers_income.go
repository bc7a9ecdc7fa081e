package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *App) createIncomeHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	var body incomeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	inc, err := a.store.CreateIncome(ctx, owner, body)
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusCreated, inc)
}

func (a *App) listIncomesHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := a.store.ListIncomes(ctx, owner, queryFilter(c, true))
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *App) updateIncomeHandler(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch incomeBody
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	inc, err := a.store.UpdateIncome(ctx, id, owner, patch)
	if err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, inc)
}

func (a *App) deleteIncomeHandler(c *gin.Context) {
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
	if err := a.store.DeleteIncome(ctx, id, owner); err != nil {
		respondStoreError(c, a.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}
