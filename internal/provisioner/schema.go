package provisioner

import (
	"ayurdeploy/pkg/domain"
	"encoding/json"
)

const (
	placeholder     = "dummy"
	placeholderDate = "2025-01-01"

	// ContractsTable receives the deployed contract addresses and ABIs.
	ContractsTable = "contracts"
	// ContractsKey is the conflict column used when upserting contracts.
	ContractsKey = "name"
)

func text(name string) domain.Column    { return domain.Column{Name: name, Type: domain.ColumnText} }
func numeric(name string) domain.Column { return domain.Column{Name: name, Type: domain.ColumnNumeric} }
func date(name string) domain.Column    { return domain.Column{Name: name, Type: domain.ColumnDate} }

// Tables returns the managed tables in the order they are provisioned.
func Tables() []domain.TableDef {
	return []domain.TableDef{
		{
			Name:       "auditor_inspections",
			PrimaryKey: "batch_id",
			Columns: []domain.Column{
				text("batch_id"), text("inspector_id"), text("result"), text("notes"), date("date"),
			},
			Seed: domain.Row{
				"batch_id":     placeholder,
				"inspector_id": placeholder,
				"result":       placeholder,
				"notes":        placeholder,
				"date":         placeholderDate,
			},
		},
		{
			Name:       "collector_collections",
			PrimaryKey: "farmer_batch_id",
			Columns: []domain.Column{
				text("farmer_batch_id"), text("farmer_id"), text("crop_name"), numeric("quantity"),
				text("collector_id"), date("collection_date"), text("status"),
			},
			Seed: domain.Row{
				"farmer_batch_id": placeholder,
				"farmer_id":       placeholder,
				"crop_name":       placeholder,
				"quantity":        0,
				"collector_id":    placeholder,
				"collection_date": placeholderDate,
				"status":          placeholder,
			},
		},
		{
			Name:       "distributor_inventory",
			PrimaryKey: "batch_id",
			Columns: []domain.Column{
				text("batch_id"), text("herb_type"), numeric("quantity"), text("storage_location"), text("status"),
			},
			Seed: domain.Row{
				"batch_id":         placeholder,
				"herb_type":        placeholder,
				"quantity":         0,
				"storage_location": placeholder,
				"status":           placeholder,
			},
		},
		{
			// harvest_date and timestamp hold free text written by the dApp.
			Name:       "farmer_batches",
			PrimaryKey: "batch_id",
			Columns: []domain.Column{
				text("batch_id"), text("crop_type"), numeric("quantity"), text("harvest_date"),
				text("farm_location"), text("photo_hash"), text("status"), text("owner"), text("timestamp"),
			},
			Seed: domain.Row{
				"batch_id":      placeholder,
				"crop_type":     placeholder,
				"quantity":      0,
				"harvest_date":  placeholder,
				"farm_location": placeholder,
				"photo_hash":    placeholder,
				"status":        placeholder,
				"owner":         placeholder,
				"timestamp":     placeholderDate,
			},
		},
		{
			Name:       "manufacturer_products",
			PrimaryKey: "product_id",
			Columns: []domain.Column{
				text("product_id"), text("source_batch_id"), text("product_type"), numeric("quantity_processed"),
				numeric("wastage"), date("processing_date"), date("expiry_date"), text("manufacturer_id"),
			},
			Seed: domain.Row{
				"product_id":         placeholder,
				"source_batch_id":    placeholder,
				"product_type":       placeholder,
				"quantity_processed": 0,
				"wastage":            0,
				"processing_date":    placeholderDate,
				"expiry_date":        placeholderDate,
				"manufacturer_id":    placeholder,
			},
		},
		{
			Name:       ContractsTable,
			PrimaryKey: ContractsKey,
			Columns: []domain.Column{
				text("name"), text("address"), {Name: "abi", Type: domain.ColumnJSON},
			},
			Seed: domain.Row{
				"name":    placeholder,
				"address": placeholder,
				"abi":     json.RawMessage(`{}`),
			},
		},
	}
}
