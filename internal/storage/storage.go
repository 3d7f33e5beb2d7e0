// Package storage définit le port de stockage clé/valeur local à l'appareil.
// Il remplace le localStorage ambiant du portail d'origine par une interface
// injectable : un faux en mémoire pour les tests, sqlite en production.
package storage

// ErrNotFound est retourné par Get quand la clé n'existe pas.
type ErrNotFound struct{ Key string }

func (e ErrNotFound) Error() string { return "storage: key not found: " + e.Key }

// ChangeFunc est notifié après chaque écriture réussie, avec la clé touchée.
// Équivalent de l'événement "storage" du navigateur : les lecteurs doivent
// relire la clé pour observer la nouvelle valeur.
type ChangeFunc func(key string)

// KV est le contrat minimal du store local.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Subscribe(fn ChangeFunc)
}
