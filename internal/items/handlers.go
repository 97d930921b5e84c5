package items

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/acmeshop/itemsvc/internal/validation"
)

// Handler provides HTTP handlers for the item routes
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new items handler
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// readItemsParams carries the query parameters of ReadItems
type readItemsParams struct {
	Q string `form:"q" binding:"required,min=3,max=50,fixedquery"`
}

// CreateItem computes the tax-inclusive price for a submitted item
// @Summary Create an item with computed total
// @Description Accepts an item and returns its fields plus price_with_tax
// @Tags Items
// @Accept json
// @Produce json
// @Param X-Trace-ID header string false "Trace ID for request tracking"
// @Param item body Item true "Item payload"
// @Success 200 {object} map[string]interface{} "Item fields plus price_with_tax"
// @Failure 400 {object} map[string]interface{} "Malformed request body"
// @Failure 422 {object} map[string]interface{} "Constraint violation"
// @Router /items1/ [post]
func (h *Handler) CreateItem(c *gin.Context) {
	traceID := h.traceID(c)

	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		h.bindError(c, traceID, err)
		return
	}

	// The tax-inclusive total is this route's whole purpose, so an absent
	// tax is rejected rather than silently treated as zero.
	if item.Tax == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "VALIDATION_ERROR",
			"message":  "tax is required to compute price_with_tax",
			"fields":   []validation.FieldError{{Field: "tax", Rule: "required"}},
			"trace_id": traceID,
		})
		return
	}

	resp := item.fields()
	resp["price_with_tax"] = *item.Price + *item.Tax

	h.logger.Debug("item created",
		zap.String("trace_id", traceID),
		zap.String("name", item.Name))

	c.JSON(http.StatusOK, resp)
}

// UpdateItem echoes the path identifier together with the item fields
// @Summary Update an item by id
// @Description Accepts an integer path id and an item body, returns both
// @Tags Items
// @Accept json
// @Produce json
// @Param X-Trace-ID header string false "Trace ID for request tracking"
// @Param item_id path int true "Item ID"
// @Param item body Item true "Item payload"
// @Success 200 {object} map[string]interface{} "item_id plus item fields"
// @Failure 400 {object} map[string]interface{} "Invalid item id or malformed body"
// @Failure 422 {object} map[string]interface{} "Constraint violation"
// @Router /items2/{item_id} [put]
func (h *Handler) UpdateItem(c *gin.Context) {
	traceID := h.traceID(c)

	itemID, ok := h.pathID(c, traceID)
	if !ok {
		return
	}

	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		h.bindError(c, traceID, err)
		return
	}

	resp := item.fields()
	resp["item_id"] = itemID

	c.JSON(http.StatusOK, resp)
}

// UpdateItemWithQuery echoes path id, item fields and the optional q parameter
// @Summary Update an item by id with an optional query string
// @Description As the plain update, plus q is echoed back when supplied
// @Tags Items
// @Accept json
// @Produce json
// @Param X-Trace-ID header string false "Trace ID for request tracking"
// @Param item_id path int true "Item ID"
// @Param q query string false "Free-text query"
// @Param item body Item true "Item payload"
// @Success 200 {object} map[string]interface{} "item_id plus item fields plus optional q"
// @Failure 400 {object} map[string]interface{} "Invalid item id or malformed body"
// @Failure 422 {object} map[string]interface{} "Constraint violation"
// @Router /items3/{item_id} [put]
func (h *Handler) UpdateItemWithQuery(c *gin.Context) {
	traceID := h.traceID(c)

	itemID, ok := h.pathID(c, traceID)
	if !ok {
		return
	}

	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		h.bindError(c, traceID, err)
		return
	}

	resp := item.fields()
	resp["item_id"] = itemID
	if q := c.Query("q"); q != "" {
		resp["q"] = q
	}

	c.JSON(http.StatusOK, resp)
}

// ReadItems lists the fixed items, validating the q query parameter
// @Summary List items
// @Description Returns the fixed item list; q must be 3-50 chars matching ^fixedquery$
// @Tags Items
// @Accept json
// @Produce json
// @Param X-Trace-ID header string false "Trace ID for request tracking"
// @Param q query string true "Query, length 3-50, pattern ^fixedquery$"
// @Success 200 {object} map[string]interface{} "Fixed item list plus q echo"
// @Failure 422 {object} map[string]interface{} "Constraint violation"
// @Router /items4 [get]
func (h *Handler) ReadItems(c *gin.Context) {
	traceID := h.traceID(c)

	var params readItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.bindError(c, traceID, err)
		return
	}

	resp := gin.H{
		"items": []gin.H{
			{"item_id": "Foo"},
			{"item_id": "Bar"},
		},
	}
	resp[params.Q] = params.Q

	c.JSON(http.StatusOK, resp)
}

// traceID returns the request trace id, generating one when absent
func (h *Handler) traceID(c *gin.Context) string {
	traceID := c.GetHeader("X-Trace-ID")
	if traceID == "" {
		traceID = uuid.New().String()
	}
	c.Header("X-Trace-ID", traceID)
	return traceID
}

// pathID parses the item_id path parameter, writing a 400 on failure
func (h *Handler) pathID(c *gin.Context, traceID string) (int, bool) {
	idStr := c.Param("item_id")
	itemID, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "INVALID_ITEM_ID",
			"message":  "item_id must be an integer",
			"fields":   []validation.FieldError{{Field: "item_id", Rule: "integer"}},
			"trace_id": traceID,
		})
		return 0, false
	}
	return itemID, true
}

// bindError writes a structured error for a failed bind: 422 for declared
// constraint violations, 400 for payloads that could not be parsed at all
func (h *Handler) bindError(c *gin.Context, traceID string, err error) {
	if validation.IsConstraintViolation(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "VALIDATION_ERROR",
			"message":  "validation failed",
			"fields":   validation.Fields(err),
			"trace_id": traceID,
		})
		return
	}

	h.logger.Debug("malformed request", zap.String("trace_id", traceID), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"error":    "INVALID_REQUEST",
		"message":  "invalid request format",
		"details":  err.Error(),
		"trace_id": traceID,
	})
}
