package main

import (
    "log"
    "os"

    "github.com/AlexHerbertGit/Kobra-Kai-Web-Application/config"
    "github.com/AlexHerbertGit/Kobra-Kai-Web-Application/controllers"
    "github.com/AlexHerbertGit/Kobra-Kai-Web-Application/routes"
    "github.com/AlexHerbertGit/Kobra-Kai-Web-Application/services"
)

func main() {
    config.InitDB()

    var notifier services.Notifier
    pushSvc, err := services.NewPushService(config.DB)
    if err != nil {
        log.Printf("push notifications disabled: %v", err)
    } else {
        notifier = pushSvc
    }

    r := routes.SetupRouter(routes.Controllers{
        Auth:   controllers.NewAuthController(services.NewAuthService(config.DB)),
        Meals:  controllers.NewMealController(services.NewMealService(config.DB)),
        Orders: controllers.NewOrderController(services.NewOrderService(config.DB, notifier)),
        Users:  controllers.NewUserController(services.NewUserService(config.DB)),
        Push:   controllers.NewPushController(pushSvc),
    })

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }
    r.Run(":" + port)
}
