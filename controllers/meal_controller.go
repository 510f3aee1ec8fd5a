package controllers

import (
	"net/http"
	"strconv"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

func (mc *MealController) ListMeals(c *gin.Context) {
	meals, err := mc.Meals.ListMeals()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) CreateMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.CreateMeal(c.GetUint("userID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func mealID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return 0, false
	}
	return uint(id), true
}

func (mc *MealController) UpdateMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	var input services.MealUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.UpdateMeal(c.GetUint("userID"), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	if err := mc.Meals.DeleteMeal(c.GetUint("userID"), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
