package view

// Image references arrive from the backend as bare file names. The original
// client resolved them by enumerating a bundled image directory at build
// time; here the mapping from logical key to served asset is declared
// explicitly, with a placeholder for anything unknown.

const (
	tourImagePlaceholder = "/static/img/tours/default.jpg"
	userImagePlaceholder = "/static/img/users/default.jpg"
)

var tourImages = map[string]string{
	"tour-1-cover.jpg": "/static/img/tours/tour-1-cover.jpg",
	"tour-1-1.jpg":     "/static/img/tours/tour-1-1.jpg",
	"tour-1-2.jpg":     "/static/img/tours/tour-1-2.jpg",
	"tour-1-3.jpg":     "/static/img/tours/tour-1-3.jpg",
	"tour-2-cover.jpg": "/static/img/tours/tour-2-cover.jpg",
	"tour-2-1.jpg":     "/static/img/tours/tour-2-1.jpg",
	"tour-2-2.jpg":     "/static/img/tours/tour-2-2.jpg",
	"tour-2-3.jpg":     "/static/img/tours/tour-2-3.jpg",
	"tour-3-cover.jpg": "/static/img/tours/tour-3-cover.jpg",
	"tour-3-1.jpg":     "/static/img/tours/tour-3-1.jpg",
	"tour-3-2.jpg":     "/static/img/tours/tour-3-2.jpg",
	"tour-3-3.jpg":     "/static/img/tours/tour-3-3.jpg",
	"tour-4-cover.jpg": "/static/img/tours/tour-4-cover.jpg",
	"tour-4-1.jpg":     "/static/img/tours/tour-4-1.jpg",
	"tour-4-2.jpg":     "/static/img/tours/tour-4-2.jpg",
	"tour-4-3.jpg":     "/static/img/tours/tour-4-3.jpg",
	"tour-5-cover.jpg": "/static/img/tours/tour-5-cover.jpg",
	"tour-5-1.jpg":     "/static/img/tours/tour-5-1.jpg",
	"tour-5-2.jpg":     "/static/img/tours/tour-5-2.jpg",
	"tour-5-3.jpg":     "/static/img/tours/tour-5-3.jpg",
	"tour-6-cover.jpg": "/static/img/tours/tour-6-cover.jpg",
	"tour-6-1.jpg":     "/static/img/tours/tour-6-1.jpg",
	"tour-6-2.jpg":     "/static/img/tours/tour-6-2.jpg",
	"tour-6-3.jpg":     "/static/img/tours/tour-6-3.jpg",
	"tour-7-cover.jpg": "/static/img/tours/tour-7-cover.jpg",
	"tour-7-1.jpg":     "/static/img/tours/tour-7-1.jpg",
	"tour-7-2.jpg":     "/static/img/tours/tour-7-2.jpg",
	"tour-7-3.jpg":     "/static/img/tours/tour-7-3.jpg",
	"tour-8-cover.jpg": "/static/img/tours/tour-8-cover.jpg",
	"tour-8-1.jpg":     "/static/img/tours/tour-8-1.jpg",
	"tour-8-2.jpg":     "/static/img/tours/tour-8-2.jpg",
	"tour-8-3.jpg":     "/static/img/tours/tour-8-3.jpg",
	"tour-9-cover.jpg": "/static/img/tours/tour-9-cover.jpg",
	"tour-9-1.jpg":     "/static/img/tours/tour-9-1.jpg",
	"tour-9-2.jpg":     "/static/img/tours/tour-9-2.jpg",
	"tour-9-3.jpg":     "/static/img/tours/tour-9-3.jpg",
}

var userImages = map[string]string{
	"user-1.jpg":  "/static/img/users/user-1.jpg",
	"user-2.jpg":  "/static/img/users/user-2.jpg",
	"user-3.jpg":  "/static/img/users/user-3.jpg",
	"user-4.jpg":  "/static/img/users/user-4.jpg",
	"user-5.jpg":  "/static/img/users/user-5.jpg",
	"user-6.jpg":  "/static/img/users/user-6.jpg",
	"user-7.jpg":  "/static/img/users/user-7.jpg",
	"user-8.jpg":  "/static/img/users/user-8.jpg",
	"user-9.jpg":  "/static/img/users/user-9.jpg",
	"user-10.jpg": "/static/img/users/user-10.jpg",
	"user-11.jpg": "/static/img/users/user-11.jpg",
	"user-12.jpg": "/static/img/users/user-12.jpg",
	"user-13.jpg": "/static/img/users/user-13.jpg",
	"user-14.jpg": "/static/img/users/user-14.jpg",
	"user-15.jpg": "/static/img/users/user-15.jpg",
	"user-16.jpg": "/static/img/users/user-16.jpg",
	"user-17.jpg": "/static/img/users/user-17.jpg",
	"user-18.jpg": "/static/img/users/user-18.jpg",
	"user-19.jpg": "/static/img/users/user-19.jpg",
}

func TourImage(key string) string {
	if path, ok := tourImages[key]; ok {
		return path
	}
	return tourImagePlaceholder
}

func UserImage(key string) string {
	if path, ok := userImages[key]; ok {
		return path
	}
	return userImagePlaceholder
}
