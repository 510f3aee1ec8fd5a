package controllers

import (
	"net/http"
	"strconv"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/middlewares"
	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type PlaceOrderInput struct {
	MealID   uint `json:"mealId" binding:"required"`
	Quantity int  `json:"quantity"`
}

func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var input PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	placed, err := oc.Orders.PlaceOrder(c.GetUint("userID"), input.MealID, input.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, placed)
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, false
	}
	return uint(id), true
}

func (oc *OrderController) MoveToCurrent(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := oc.Orders.MoveToCurrent(id, middlewares.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) Complete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := oc.Orders.Complete(id, middlewares.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) ListOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(middlewares.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
