package handler

import "github.com/Vedlovable/Samadhaan-Setu/internal/lifecycle"

// controller est partagé par tous les handlers, injecté au démarrage.
var controller *lifecycle.Controller

// Init branche le contrôleur de cycle de vie sur le package handler.
func Init(c *lifecycle.Controller) {
	controller = c
}
