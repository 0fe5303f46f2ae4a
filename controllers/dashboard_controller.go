package controllers

import (
	"log"
	"sort"
	"strconv"
	"sync"

	"github.com/smithbhavsar/ChatpataAI/entity"
	"github.com/smithbhavsar/ChatpataAI/gateway"
	"github.com/smithbhavsar/ChatpataAI/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB      *gorm.DB
	Gateway *gateway.Client
}

func NewDashboardController(db *gorm.DB, gw *gateway.Client) *DashboardController {
	return &DashboardController{DB: db, Gateway: gw}
}

// GET /partner/waiter/dashboard?restaurantId= — open table orders for the
// restaurant, grouped by kitchen status. The upstream only exposes
// unbilled orders per customer, so the view walks the registered
// customers and merges.
func (dc *DashboardController) Waiter(c *gin.Context) {
	restaurantID, err := strconv.ParseInt(c.Query("restaurantId"), 10, 64)
	if err != nil || restaurantID <= 0 {
		resp.BadRequest(c, "restaurantId is required")
		return
	}

	var customers []entity.Customer
	if err := dc.DB.Where("role = ?", entity.RoleUser).Find(&customers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	// bounded fan-out; a failed lookup drops that customer from the view
	// instead of failing the whole dashboard
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		byStatus = map[string][]entity.Order{}
		failed   = 0
	)
	sem := make(chan struct{}, 4)
	for _, cust := range customers {
		wg.Add(1)
		sem <- struct{}{}
		go func(cust entity.Customer) {
			defer wg.Done()
			defer func() { <-sem }()

			id := strconv.FormatUint(uint64(cust.ID), 10)
			orders, err := dc.Gateway.ListUnbilledOrders(c.Request.Context(), id, restaurantID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("waiter dashboard: unbilled orders for customer %d: %v", cust.ID, err)
				failed++
				return
			}
			for _, o := range orders {
				byStatus[o.Status] = append(byStatus[o.Status], o)
			}
		}(cust)
	}
	wg.Wait()

	counts := gin.H{}
	for _, st := range []string{entity.OrderPending, entity.OrderPreparing, entity.OrderReady, entity.OrderServed} {
		counts[st] = len(byStatus[st])
	}
	resp.OK(c, gin.H{
		"restaurantId":  restaurantID,
		"orders":        byStatus,
		"counts":        counts,
		"failedLookups": failed,
	})
}

// GET /admin/dashboard — restaurant estate overview
func (dc *DashboardController) Admin(c *gin.Context) {
	restaurants, err := dc.Gateway.ListRestaurants(c.Request.Context())
	if err != nil {
		resp.BadGateway(c, err)
		return
	}

	byCuisine := map[string]int{}
	vegetarian := 0
	var ratingSum float64
	for _, r := range restaurants {
		byCuisine[r.Cuisine]++
		if r.IsVegetarian {
			vegetarian++
		}
		ratingSum += r.Rating
	}

	cuisines := make([]string, 0, len(byCuisine))
	for cz := range byCuisine {
		cuisines = append(cuisines, cz)
	}
	sort.Strings(cuisines)

	avgRating := 0.0
	if len(restaurants) > 0 {
		avgRating = ratingSum / float64(len(restaurants))
	}

	resp.OK(c, gin.H{
		"totalRestaurants": len(restaurants),
		"vegetarian":       vegetarian,
		"averageRating":    avgRating,
		"cuisines":         cuisines,
		"byCuisine":        byCuisine,
		"restaurants":      restaurants,
	})
}

// GET /superadmin/dashboard — registered accounts by role
func (dc *DashboardController) SuperAdmin(c *gin.Context) {
	var customers []entity.Customer
	if err := dc.DB.Order("created_at desc").Find(&customers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	byRole := map[entity.Role]int{}
	loyalty := 0
	for _, cust := range customers {
		byRole[cust.Role]++
		loyalty += cust.LoyaltyPoints
	}

	resp.OK(c, gin.H{
		"totalCustomers":     len(customers),
		"byRole":             byRole,
		"totalLoyaltyPoints": loyalty,
		"customers":          customers,
	})
}
