package router

import "github.com/gin-gonic/gin"

// Registry queues feature modules and mounts them all under the shared
// /api prefix when RegisterAll runs. Middleware added through Use applies
// to every module route but not to anything mounted directly on the engine.
type Registry struct {
	engine  *gin.Engine
	api     *gin.RouterGroup
	shared  []gin.HandlerFunc
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{engine: engine, api: engine.Group("/api")}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.shared = append(r.shared, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll mounts every queued module. Call once, after all Use and Add
// calls, since gin resolves group middleware at registration time.
func (r *Registry) RegisterAll() {
	if len(r.shared) > 0 {
		r.api.Use(r.shared...)
	}
	for _, m := range r.modules {
		m.Register(r.api)
	}
}
