package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"restaurant-ordering/order-svc/internal/domain"
	"restaurant-ordering/order-svc/internal/service"

	"github.com/gorilla/mux"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func category(r *http.Request) domain.Category {
	return domain.Category(mux.Vars(r)["category"])
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Menu.List(r.Context(), category(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dish, err := h.Menu.Get(r.Context(), category(r), mux.Vars(r)["dishId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	dish.Category = category(r)
	if err := h.Menu.Create(r.Context(), sess, &dish); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = mux.Vars(r)["dishId"]
	dish.Category = category(r)
	if err := h.Menu.Update(r.Context(), sess, &dish); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	if err := h.Menu.Delete(r.Context(), sess, category(r), mux.Vars(r)["dishId"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadDishImage(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	if !sess.IsAdmin() {
		h.writeError(w, service.ErrForbidden)
		return
	}
	cat := category(r)
	dishID := mux.Vars(r)["dishId"]
	if _, err := h.Menu.Get(r.Context(), cat, dishID); err != nil {
		h.writeError(w, err)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext, ok := allowedImageTypes[header.Header.Get("Content-Type")]
	if !ok {
		http.Error(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed", http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		http.Error(w, "Failed to create upload directory", http.StatusInternalServerError)
		return
	}

	filename := "dish_" + string(cat) + "_" + filepath.Base(dishID) + ext
	dst, err := os.Create(filepath.Join(h.UploadDir, filename))
	if err != nil {
		http.Error(w, "Failed to create file", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	imageURL := "/uploads/" + filename
	if err := h.Menu.UpdateImage(r.Context(), sess, cat, dishID, imageURL); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}
