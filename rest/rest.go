package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"nhooyr.io/websocket"

	"github.com/hijack-gaming/holdem-engine/game"
	"github.com/hijack-gaming/holdem-engine/logging"
	"github.com/hijack-gaming/holdem-engine/nats"
)

var restLogger = log.With().Str("logger_name", "game::rest").Logger()

const writeTimeout = 10 * time.Second

var tableManager *game.Manager
var updatePublisher *nats.Publisher

//
// APP error definition
//
type appError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type newTableRequest struct {
	TableID string            `json:"tableId"`
	Table   game.TableConfig  `json:"table"`
	Seats   []game.SeatConfig `json:"seats"`
}

type newTableResponse struct {
	TableID string `json:"tableId"`
	HandNum uint32 `json:"handNum"`
}

type processTableRequest struct {
	TableID string `json:"tableId"`
}

type addOnRequest struct {
	TableID string  `json:"tableId"`
	Seat    int     `json:"seat"`
	Amount  float64 `json:"amount"`
}

func RunRestServer(manager *game.Manager, publisher *nats.Publisher, addr string) {
	tableManager = manager
	updatePublisher = publisher
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.POST("/new-table", newTable)
	r.POST("/process", processTable)
	r.POST("/add-on", addOn)
	r.GET("/table/:tableId", fetchTable)
	r.GET("/ws/:tableId", tableUpdates)
	r.Run(addr)
}

func newTable(c *gin.Context) {
	restLogger.Info().Msgf("New table request is received")
	var req newTableRequest
	err := c.BindJSON(&req)
	if err != nil {
		restLogger.Error().Msgf("Failed to parse table configuration. Error: %v", err)
		c.IndentedJSON(http.StatusBadRequest, appError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}

	if req.TableID == "" {
		req.TableID = uuid.New().String()
	}
	snapshot, err := tableManager.CreateTable(c.Request.Context(), req.TableID, req.Table, req.Seats)
	if err != nil {
		restLogger.Error().Msgf("Unable to create table: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, appError{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newTableResponse{
		TableID: snapshot.Game.TableID,
		HandNum: snapshot.Game.HandNum,
	})
}

func processTable(c *gin.Context) {
	var req processTableRequest
	err := c.BindJSON(&req)
	if err != nil {
		restLogger.Error().Msg(fmt.Sprintf("Failed to read process request. Error: %s", err.Error()))
		c.IndentedJSON(http.StatusBadRequest, appError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}

	snapshot, err := tableManager.ProcessTable(c.Request.Context(), req.TableID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Cause(err) == game.ErrTableNotFound {
			status = http.StatusNotFound
		}
		restLogger.Error().
			Str(logging.TableIDKey, req.TableID).
			Msgf("Unable to process table: %v", err)
		c.IndentedJSON(status, appError{
			Code:    status,
			Message: err.Error(),
		})
		return
	}

	respondWithSnapshot(c, snapshot)
}

func addOn(c *gin.Context) {
	var req addOnRequest
	err := c.BindJSON(&req)
	if err != nil {
		restLogger.Error().Msg(fmt.Sprintf("Failed to read add-on request. Error: %s", err.Error()))
		c.IndentedJSON(http.StatusBadRequest, appError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}

	snapshot, err := tableManager.RequestAddOn(c.Request.Context(), req.TableID, req.Seat, req.Amount)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Cause(err) == game.ErrTableNotFound {
			status = http.StatusNotFound
		}
		restLogger.Error().
			Str(logging.TableIDKey, req.TableID).
			Msgf("Unable to apply add-on: %v", err)
		c.IndentedJSON(status, appError{
			Code:    status,
			Message: err.Error(),
		})
		return
	}

	respondWithSnapshot(c, snapshot)
}

func fetchTable(c *gin.Context) {
	tableID := c.Param("tableId")
	snapshot, err := tableManager.FetchTable(c.Request.Context(), tableID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Cause(err) == game.ErrTableNotFound {
			status = http.StatusNotFound
		}
		c.IndentedJSON(status, appError{
			Code:    status,
			Message: err.Error(),
		})
		return
	}

	respondWithSnapshot(c, snapshot)
}

// The deck never leaves the server.
func respondWithSnapshot(c *gin.Context, snapshot *game.Snapshot) {
	redacted, err := snapshot.Clone()
	if err != nil {
		restLogger.Error().Msgf("Failed to copy snapshot for response: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, appError{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
		return
	}
	redacted.Game.Deck = nil
	c.JSON(http.StatusOK, redacted)
}

// tableUpdates relays the table's NATS update stream to a websocket
// client. One subscription per connection.
func tableUpdates(c *gin.Context) {
	tableID := c.Param("tableId")
	if updatePublisher == nil {
		c.IndentedJSON(http.StatusServiceUnavailable, appError{
			Code:    http.StatusServiceUnavailable,
			Message: "table updates are not available",
		})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		restLogger.Error().Msgf("Failed to accept websocket connection: %v", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "closed")

	msgChan := make(chan *natsgo.Msg, 64)
	sub, err := updatePublisher.Conn().ChanSubscribe(nats.TableUpdateSubject(tableID), msgChan)
	if err != nil {
		restLogger.Error().
			Str(logging.TableIDKey, tableID).
			Msgf("Failed to subscribe for table updates: %v", err)
		conn.Close(websocket.StatusInternalError, "subscribe failed")
		return
	}
	defer sub.Unsubscribe()

	ctx := c.Request.Context()
	for {
		select {
		case msg := <-msgChan:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(writeCtx, websocket.MessageText, msg.Data)
			cancel()
			if err != nil {
				restLogger.Debug().
					Str(logging.TableIDKey, tableID).
					Msgf("Websocket write failed, closing relay: %v", err)
				return
			}
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		}
	}
}
