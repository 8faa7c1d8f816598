package impl

import (
	"farha/internal/domain/entity"
	"farha/internal/usecase"
)

// Transfer mapping between persistence entities and wire-level transfer
// objects. Pure and side-effect free; favorite annotation is the caller's
// decision, so the flag is always passed in.

func toBeautyCenterDTO(center *entity.BeautyCenter, isFavorite bool) usecase.BeautyCenterDTO {
	subServices := make([]usecase.SubServiceDTO, 0, len(center.SubServices))
	for i := range center.SubServices {
		subServices = append(subServices, toSubServiceDTO(&center.SubServices[i]))
	}

	return usecase.BeautyCenterDTO{
		ID:            center.ID,
		Name:          center.Name,
		Description:   center.Description,
		GovernorateID: center.GovernorateID,
		CityID:        center.CityID,
		ImageURLs:     center.ImagePaths(),
		IsFavorite:    isFavorite,
		SubServices:   subServices,
	}
}

func toSubServiceDTO(sub *entity.SubService) usecase.SubServiceDTO {
	return usecase.SubServiceDTO{
		ID:             sub.ID,
		BeautyCenterID: sub.BeautyCenterID,
		Name:           sub.Name,
		Description:    sub.Description,
		Price:          sub.Price,
	}
}

func fromSubServiceInput(input *usecase.SubServiceInput) *entity.SubService {
	return &entity.SubService{
		BeautyCenterID: input.BeautyCenterID,
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
	}
}

func fromAddBeautyCenterInput(input *usecase.AddBeautyCenterInput) *entity.BeautyCenter {
	return &entity.BeautyCenter{
		Service: entity.Service{
			Kind:          entity.KindBeautyCenter,
			Name:          input.Name,
			Description:   input.Description,
			OwnerID:       input.OwnerID,
			GovernorateID: input.GovernorateID,
			CityID:        input.CityID,
		},
	}
}

func imageRows(paths []string) []entity.BeautyCenterImage {
	rows := make([]entity.BeautyCenterImage, 0, len(paths))
	for _, path := range paths {
		rows = append(rows, entity.BeautyCenterImage{Path: path})
	}

	return rows
}

// missingPaths reconciles the stored path list with freshly saved paths and
// returns the add-set: saved paths not already attached. Inserting only the
// add-set keeps the merge idempotent and guards against path duplication
// when a save references an already-attached filename.
func missingPaths(existing, saved []string) []string {
	attached := make(map[string]struct{}, len(existing))
	for _, path := range existing {
		attached[path] = struct{}{}
	}

	addSet := make([]string, 0, len(saved))
	for _, path := range saved {
		if _, ok := attached[path]; ok {
			continue
		}
		attached[path] = struct{}{}
		addSet = append(addSet, path)
	}

	return addSet
}

// favoritedByAnyCustomer is the detail-view favorite flag: true when any
// customer has favorited the center. Discovery stamps the per-customer flag
// instead; the two semantics share a DTO field name on purpose, mirroring
// the upstream contract.
func favoritedByAnyCustomer(center *entity.BeautyCenter) bool {
	return len(center.Favorites) > 0
}

func toServiceSummaryDTO(svc *entity.Service) usecase.ServiceSummaryDTO {
	return usecase.ServiceSummaryDTO{
		ID:            svc.ID,
		Kind:          svc.Kind.String(),
		Name:          svc.Name,
		Description:   svc.Description,
		GovernorateID: svc.GovernorateID,
		CityID:        svc.CityID,
	}
}

func toFavoriteDTO(favorite *entity.FavoriteService) usecase.FavoriteDTO {
	return usecase.FavoriteDTO{
		ID:         favorite.ID,
		CustomerID: favorite.CustomerID,
		ServiceID:  favorite.ServiceID,
		CreatedAt:  favorite.CreatedAt,
	}
}

func toOwnerDTO(owner *entity.Owner) usecase.OwnerDTO {
	return usecase.OwnerDTO{
		ID:     owner.ID,
		Name:   owner.Name,
		Email:  owner.Email,
		Phone:  owner.Phone,
		Status: owner.Status.String(),
	}
}
