package server

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/cache"

	"github.com/katalvlaran/labyrinth/astar"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/lattice"
	"github.com/katalvlaran/labyrinth/render"
)

// Defaults for MazeControllerConfig zero values.
const (
	DefaultMaxSize   = 201
	DefaultCacheSize = 64

	// drawsPerRoom scales the draw cap with the room count when
	// MaxDraws is unset. Spanning n rooms takes on the order of n·ln n draws.
	drawsPerRoom = 64
)

// ErrBadMaxSize indicates a MaxSize below lattice.MinSize.
var ErrBadMaxSize = errors.New("server: MaxSize must be at least 3")

// MazeControllerConfig configures a MazeController.
type MazeControllerConfig struct {
	MaxSize   int         // largest accepted width or height; 0 means DefaultMaxSize
	MaxDraws  int         // generation draw cap; 0 means the larger of generator.DefaultMaxDraws and drawsPerRoom per room
	CacheSize int         // number of recent mazes kept for lookup; 0 means DefaultCacheSize
	Logger    *log.Logger // nil logs to stderr
}

// MazeController generates, solves and remembers mazes. Each request builds
// its own grid, so handlers run concurrently; only the recent-maze cache is
// shared.
type MazeController struct {
	maxSize  int
	maxDraws int
	logger   *log.Logger

	mu     sync.Mutex
	recent *cache.Cache[uuid.UUID, *MazeResponse]
}

// NewMazeController initializes a MazeController.
func NewMazeController(cfg MazeControllerConfig) (*MazeController, error) {
	if cfg.MaxSize == 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.MaxSize < lattice.MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxSize, cfg.MaxSize)
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stderr, "[SERVER] ", log.LstdFlags)
	}

	return &MazeController{
		maxSize:  cfg.MaxSize,
		maxDraws: max(cfg.MaxDraws, 0),
		logger:   cfg.Logger,
		recent:   cache.New[uuid.UUID, *MazeResponse](cfg.CacheSize),
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.get)
		mazes.GET("/:ID/ascii", mc.ascii)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Width > mc.maxSize || request.Height > mc.maxSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("width and height must not exceed %d", mc.maxSize)})
		return
	}

	response, err := mc.build(request)
	switch {
	case errors.Is(err, generator.ErrIncomplete):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case err != nil:
		mc.logger.Printf("[ERROR] build %dx%d: %v", request.Width, request.Height, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while building maze"})
		return
	}

	mc.mu.Lock()
	mc.recent.Put(response.ID, response)
	mc.mu.Unlock()
	mc.logger.Printf("[INFO] maze %s %dx%d seed=%d cost=%d", response.ID, response.Width, response.Height, response.Seed, response.Cost)

	ctx.JSON(http.StatusCreated, response)
}

// build runs generate, braid and solve on a fresh grid.
func (mc *MazeController) build(request MazeRequest) (*MazeResponse, error) {
	var opts []lattice.Option
	if request.Seed != nil {
		opts = append(opts, lattice.WithSeed(*request.Seed))
	}
	g, err := lattice.New(request.Width, request.Height, opts...)
	if err != nil {
		return nil, err
	}
	gen, err := generator.Generate(g, generator.WithMaxDraws(mc.drawCap(g)))
	if err != nil {
		return nil, err
	}
	fraction := generator.DefaultBraidFraction
	if request.Braid != nil {
		fraction = *request.Braid
	}
	braided, err := generator.Braid(g, fraction)
	if err != nil {
		return nil, err
	}
	res, err := astar.SolveGrid(g)
	if err != nil {
		return nil, err
	}

	return &MazeResponse{
		ID:       uuid.New(),
		Width:    g.Width(),
		Height:   g.Height(),
		Seed:     g.Seed(),
		Draws:    gen.Draws,
		Merges:   gen.Merges,
		Gates:    gen.Gates,
		Braided:  braided,
		Matrix:   g.Matrix(),
		Start:    toDTO(g.Start()),
		End:      toDTO(g.End()),
		Path:     toDTOs(res.Path),
		Cost:     res.Cost,
		Expanded: res.Expanded,
	}, nil
}

// drawCap returns the configured draw cap, or one scaled to g's room count
// when none was configured.
func (mc *MazeController) drawCap(g *lattice.Grid) int {
	if mc.maxDraws > 0 {
		return mc.maxDraws
	}
	return max(generator.DefaultMaxDraws, drawsPerRoom*len(g.Rooms()))
}

// lookup resolves the :ID parameter to a remembered maze, writing the error
// response itself when it fails.
func (mc *MazeController) lookup(ctx *gin.Context) (*MazeResponse, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}

	mc.mu.Lock()
	response, ok := mc.recent.Get(ID)
	mc.mu.Unlock()
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return nil, false
	}

	return response, true
}

// get returns a remembered maze as JSON.
func (mc *MazeController) get(ctx *gin.Context) {
	if response, ok := mc.lookup(ctx); ok {
		ctx.JSON(http.StatusOK, response)
	}
}

// ascii returns a remembered maze as text with the path drawn in.
func (mc *MazeController) ascii(ctx *gin.Context) {
	response, ok := mc.lookup(ctx)
	if !ok {
		return
	}

	mask := make([][]bool, response.Height)
	for y := range mask {
		mask[y] = make([]bool, response.Width)
	}
	for _, p := range response.Path {
		mask[p.Y][p.X] = true
	}

	var buf bytes.Buffer
	if err := render.WriteASCII(&buf, response.Matrix, mask); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
