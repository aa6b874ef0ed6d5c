package handler

import (
	"net/http"

	"storefront/internal/application/usecase/abstraction"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/presentation"
)

// ResourceRoutes is the CRUD routing table of one resource mounted at prefix.
func ResourceRoutes[T, In, P any](prefix string, svc abstraction.Resource[T, In, P]) []presentation.Route {
	create := NewCreateHandler[T, In](svc)
	get := NewGetHandler[T](svc)
	list := NewListHandler[T](svc)
	update := NewUpdateHandler[T, P](svc)
	remove := NewDeleteHandler(svc)

	return []presentation.Route{
		{Method: http.MethodPost, Path: prefix, Handler: create.HandleCreate},
		{Method: http.MethodGet, Path: prefix, Handler: list.HandleList},
		{Method: http.MethodGet, Path: prefix + "/:" + presentation.IDParam, Handler: get.HandleGet},
		{Method: http.MethodPut, Path: prefix + "/:" + presentation.IDParam, Handler: update.HandleUpdate},
		{Method: http.MethodDelete, Path: prefix + "/:" + presentation.IDParam, Handler: remove.HandleDelete},
	}
}

// MediaRoutes is the routing table of an image or video collection.
func MediaRoutes(prefix string, svc abstraction.Media) []presentation.Route {
	upload := NewUploadHandler(svc)
	stream := NewStreamHandler(svc)
	get := NewGetHandler[model.Asset](svc)
	list := NewListHandler[model.Asset](svc)
	update := NewUpdateHandler[model.Asset, dto.AssetPatch](svc)
	remove := NewDeleteHandler(svc)

	byID := prefix + "/:" + presentation.IDParam
	byFilename := prefix + "/file/:" + presentation.FilenameParam

	return []presentation.Route{
		{Method: http.MethodPost, Path: prefix, Handler: upload.HandleUpload},
		{Method: http.MethodPost, Path: prefix + "/upload", Handler: upload.HandleUpload},
		{Method: http.MethodGet, Path: prefix, Handler: list.HandleList},
		{Method: http.MethodGet, Path: byID, Handler: get.HandleGet},
		{Method: http.MethodPut, Path: byID, Handler: update.HandleUpdate},
		{Method: http.MethodDelete, Path: byID, Handler: remove.HandleDelete},
		{Method: http.MethodGet, Path: byID + "/file", Handler: stream.HandleByID},
		{Method: http.MethodHead, Path: byID + "/file", Handler: stream.HandleByID},
		{Method: http.MethodGet, Path: byFilename, Handler: stream.HandleByFilename},
		{Method: http.MethodHead, Path: byFilename, Handler: stream.HandleByFilename},
	}
}

// AuthRoutes mounts login under prefix.
func AuthRoutes(prefix string, authenticator abstraction.Authenticator) []presentation.Route {
	auth := NewAuthHandler(authenticator)

	return []presentation.Route{
		{Method: http.MethodPost, Path: prefix + "/login", Handler: auth.HandleLogin},
	}
}

// DocsRoutes serves the API description and its browser UI.
func DocsRoutes(prefix string) []presentation.Route {
	docs := NewSwaggerHandler()

	return []presentation.Route{
		{Method: http.MethodGet, Path: prefix + "/swagger.json", Handler: docs.Spec},
		{Method: http.MethodGet, Path: prefix + "/docs", Handler: docs.UI},
		{Method: http.MethodGet, Path: prefix + "/docs/", Handler: docs.UI},
	}
}
