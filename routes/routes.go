package routes

import (
    "github.com/AlexHerbertGit/Kobra-Kai-Web-Application/controllers"
    "github.com/AlexHerbertGit/Kobra-Kai-Web-Application/middlewares"
    "github.com/AlexHerbertGit/Kobra-Kai-Web-Application/models"

    "github.com/gin-gonic/gin"
)

type Controllers struct {
    Auth   *controllers.AuthController
    Meals  *controllers.MealController
    Orders *controllers.OrderController
    Users  *controllers.UserController
    Push   *controllers.PushController
}

func SetupRouter(c Controllers) *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", c.Auth.Register)
        auth.POST("/login", c.Auth.Login)
        auth.GET("/me", middlewares.AuthMiddleware(), c.Auth.Me)
    }

    // Meals: browsing is public, listing management is member-only
    meals := r.Group("/meals")
    {
        meals.GET("", c.Meals.ListMeals)

        manage := meals.Group("")
        manage.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleMember))
        {
            manage.POST("", c.Meals.CreateMeal)
            manage.PUT("/:id", c.Meals.UpdateMeal)
            manage.DELETE("/:id", c.Meals.DeleteMeal)
        }
    }

    orders := r.Group("/orders")
    orders.Use(middlewares.AuthMiddleware())
    {
        orders.GET("", c.Orders.ListOrders)
        orders.POST("", middlewares.RequireRole(models.RoleBeneficiary), c.Orders.PlaceOrder)
        orders.PATCH("/:id/current", middlewares.RequireRole(models.RoleMember, models.RoleAdmin), c.Orders.MoveToCurrent)
        orders.PATCH("/:id/complete", c.Orders.Complete)
    }

    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/profile", c.Users.GetProfile)
        user.PUT("/profile", c.Users.UpdateProfile)
    }

    push := r.Group("/push")
    push.Use(middlewares.AuthMiddleware())
    {
        push.POST("/subscribe", c.Push.Subscribe)
    }

    return r
}
