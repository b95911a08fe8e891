package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"holidays/internal/auth"
	intconfig "holidays/internal/config"
	h "holidays/internal/http/handlers"
	"holidays/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{"detail": "Not found."})
	})

	jwt := auth.Manager{
		Secret:     []byte(env.JWTSecret),
		AccessTTL:  env.AccessTTL,
		RefreshTTL: env.RefreshTTL,
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		api.POST("/token/", h.ObtainToken(jwt))
		api.POST("/token/refresh/", h.RefreshToken(jwt))

		// Public catalog
		api.GET("/packages/", h.GetPackages)
		api.GET("/packages/:id/", h.GetPackageByID)
		api.GET("/packages/:id/brochure/", h.GetPackageBrochure)
		api.GET("/packages/:id/summary/", h.GetPackageSummary)

		// Public lookups
		api.GET("/destinations/", h.GetDestinations)
		api.GET("/starting-cities/", h.GetStartingCities)
		api.GET("/nationalities/", h.GetNationalities)
		api.GET("/umrah-destinations/", h.GetUmrahDestinations)
		api.GET("/itinerary-masters/", h.GetItineraryMasters)

		// Public visa browsing
		api.GET("/visas/", h.GetVisas)
		api.GET("/countries/", h.GetVisaCountries)

		// Public enquiry forms
		api.POST("/enquiry-form/", h.CreateEnquiry)
		api.POST("/holiday-form/", h.CreateHolidayEnquiry)
		api.POST("/umrah-form/", h.CreateUmrahEnquiry)

		// Back office: everything below needs a staff token.
		staff := api.Group("")
		staff.Use(middleware.RequireStaff(jwt))
		{
			staff.POST("/packages/", h.CreatePackage)
			staff.PUT("/packages/:id/", h.UpdatePackage)
			staff.DELETE("/packages/:id/", h.DeletePackage)

			staff.POST("/destinations/", h.CreateDestination)
			staff.DELETE("/destinations/:id/", h.DeleteDestination)
			staff.POST("/starting-cities/", h.CreateStartingCity)
			staff.DELETE("/starting-cities/:id/", h.DeleteStartingCity)
			staff.POST("/umrah-destinations/", h.CreateUmrahDestination)
			staff.DELETE("/umrah-destinations/:id/", h.DeleteUmrahDestination)
			staff.POST("/itinerary-masters/", h.CreateItineraryMaster)
			staff.DELETE("/itinerary-masters/:id/", h.DeleteItineraryMaster)

			staff.GET("/visas/:id/", h.GetVisaByID)
			staff.POST("/visas/", h.CreateVisa)
			staff.PUT("/visas/:id/", h.UpdateVisa)
			staff.DELETE("/visas/:id/", h.DeleteVisa)

			staff.GET("/enquiries/", h.GetEnquiries)
			staff.GET("/holiday-enquiries/", h.GetHolidayEnquiries)
			staff.GET("/umrah-enquiries/", h.GetUmrahEnquiries)

			staff.POST("/send-visa-details/", h.SendVisaDetails(env))

			admin := staff.Group("/admin")
			{
				admin.GET("/packages/", h.GetAllPackages)
				admin.GET("/visas/", h.GetAllVisas)
			}

			// User management is superuser territory.
			users := staff.Group("/users", middleware.RequireSuperuser())
			{
				users.GET("/", h.GetUsers)
				users.GET("/:id/", h.GetUserByID)
				users.POST("/", h.CreateUser)
				users.PUT("/:id/", h.UpdateUser)
				users.DELETE("/:id/", h.DeleteUser)
			}
		}
	}

	return r
}
